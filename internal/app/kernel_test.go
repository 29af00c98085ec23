package app

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/hostpage/internal/config"
	"github.com/bnema/hostpage/internal/domain"
	"github.com/bnema/hostpage/internal/ui"
)

func newTestKernel(t *testing.T, mutate func(*config.Config)) *Kernel {
	t.Helper()

	cfg := config.Default()
	cfg.Docker.Host = "tcp://127.0.0.1:1"
	cfg.Server.GracePeriod = 2
	if mutate != nil {
		mutate(cfg)
	}

	k, err := NewKernel(context.Background(), cfg, log.New(io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { _ = k.Close() })
	return k
}

func TestNewKernel_WiresServices(t *testing.T) {
	k := newTestKernel(t, nil)

	assert.NotNil(t, k.Publish())
	assert.NotNil(t, k.Host())
	assert.NotNil(t, k.Images())
	assert.Equal(t, "next-app", k.Config().Publish.Repository)

	steps := k.Publish().Plan()
	require.Len(t, steps, 7)
	assert.Equal(t, domain.StepKinds()[0], steps[0].Kind)
}

func TestNewKernel_PublishLogFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "publish.log")
	newTestKernel(t, func(cfg *config.Config) {
		cfg.Publish.LogFile = logFile
	})

	info, err := os.Stat(filepath.Dir(logFile))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestKernel_CloseIsIdempotent(t *testing.T) {
	k := newTestKernel(t, nil)

	require.NoError(t, k.Close())
	require.NoError(t, k.Close())

	var nilKernel *Kernel
	assert.NoError(t, nilKernel.Close())
}

func TestKernel_RouterServesEmbeddedIndex(t *testing.T) {
	k := newTestKernel(t, nil)
	e, err := k.Router()
	require.NoError(t, err)

	want, err := fs.ReadFile(ui.PublicFS, "index.html")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, bytes.Equal(want, rec.Body.Bytes()))
}

func TestKernel_RouterServesPublicDir(t *testing.T) {
	dir := t.TempDir()
	page := []byte("<html><body>custom</body></html>\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), page, 0o644))

	k := newTestKernel(t, func(cfg *config.Config) {
		cfg.Server.PublicDir = dir
	})
	e, err := k.Router()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, page, rec.Body.Bytes())
}

func TestKernel_RouterHostPage(t *testing.T) {
	hostname, err := os.Hostname()
	require.NoError(t, err)

	k := newTestKernel(t, nil)
	e, err := k.Router()
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/host", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), hostname)
}

func TestKernel_ServeShutsDownOnCancel(t *testing.T) {
	k := newTestKernel(t, nil)
	e, err := k.Router()
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- k.serve(ctx, e, ln) }()

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestKernel_ServeRejectsBadAddr(t *testing.T) {
	k := newTestKernel(t, func(cfg *config.Config) {
		cfg.Server.Addr = "not-an-address"
	})

	err := k.Serve(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

