package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/bnema/hostpage/internal/adapters/in/http/site"
	"github.com/bnema/hostpage/internal/ui"
)

// Router builds the echo instance for the site. A configured public
// directory replaces the embedded index page.
func (k *Kernel) Router() (*echo.Echo, error) {
	return site.NewRouter(site.RouterConfig{
		Public:    k.publicFS(),
		Templates: ui.TemplateFS,
		HostSvc:   k.hostSvc,
		RateLimit: k.cfg.Server.RateLimit,
		Log:       k.log,
	})
}

func (k *Kernel) publicFS() fs.FS {
	if dir := k.cfg.Server.PublicDir; dir != "" {
		return os.DirFS(dir)
	}
	return ui.PublicFS
}

// Serve listens on the configured address and blocks until ctx is done, then
// shuts the server down within the grace period.
func (k *Kernel) Serve(ctx context.Context) error {
	e, err := k.Router()
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", k.cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", k.cfg.Server.Addr, err)
	}

	return k.serve(ctx, e, ln)
}

func (k *Kernel) serve(ctx context.Context, e *echo.Echo, ln net.Listener) error {
	e.Listener = ln
	e.Server.ReadHeaderTimeout = 10 * time.Second
	e.Server.IdleTimeout = 120 * time.Second

	errCh := make(chan error, 1)
	go func() {
		k.log.Info("server listening", "addr", ln.Addr().String())
		if err := e.Start(ln.Addr().String()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
		k.log.Info("shutting down server", "grace", k.cfg.GraceDuration())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), k.cfg.GraceDuration())
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	// Surface a listener error that raced with the shutdown.
	if err, ok := <-errCh; ok {
		return fmt.Errorf("server error: %w", err)
	}
	k.log.Info("server stopped")
	return nil
}
