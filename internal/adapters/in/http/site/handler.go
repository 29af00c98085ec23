// Package site implements the public HTTP pages.
package site

import (
	"io/fs"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"

	"github.com/bnema/hostpage/internal/boundaries/in"
)

const (
	indexFile    = "index.html"
	hostTemplate = "host.html"
)

// Handler serves the index page and the host page.
type Handler struct {
	public  fs.FS
	hostSvc in.HostService
	log     *log.Logger
}

// NewHandler creates a new site handler.
func NewHandler(public fs.FS, hostSvc in.HostService, logger *log.Logger) *Handler {
	return &Handler{
		public:  public,
		hostSvc: hostSvc,
		log:     logger,
	}
}

// Register binds the site routes.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/host", h.Host)
}

// Index returns the static index page unchanged.
func (h *Handler) Index(c echo.Context) error {
	return echo.StaticFileHandler(indexFile, h.public)(c)
}

// Host renders the host page with the hostname looked up for this request.
func (h *Handler) Host(c echo.Context) error {
	info, err := h.hostSvc.Describe(c.Request().Context())
	if err != nil {
		h.log.Error("failed to describe host", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "hostname lookup failed")
	}
	return c.Render(http.StatusOK, hostTemplate, info)
}
