package site

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
)

// Renderer implements echo.Renderer with html/template.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses every *.html template in fsys.
func NewRenderer(fsys fs.FS) (*Renderer, error) {
	tmpl, err := template.ParseFS(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{templates: tmpl}, nil
}

// Render executes the named template. echo buffers the output, so a failing
// template never produces a partial response.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	if err := r.templates.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to execute %s: %w", name, err)
	}
	return nil
}
