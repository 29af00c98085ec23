package site

import (
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bnema/hostpage/internal/boundaries/in"
)

// RouterConfig holds what NewRouter needs to build the site.
type RouterConfig struct {
	Public    fs.FS
	Templates fs.FS
	HostSvc   in.HostService
	RateLimit float64
	Log       *log.Logger
}

// NewRouter builds the echo instance serving the site.
func NewRouter(cfg RouterConfig) (*echo.Echo, error) {
	renderer, err := NewRenderer(cfg.Templates)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer

	e.Use(middleware.Recover())
	e.Use(AccessLogger(cfg.Log))
	if cfg.RateLimit > 0 {
		e.Use(RateLimit(cfg.RateLimit))
	}

	NewHandler(cfg.Public, cfg.HostSvc, cfg.Log).Register(e)
	return e, nil
}
