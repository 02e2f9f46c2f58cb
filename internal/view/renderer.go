// Package view renders the movie site's HTML pages from templates embedded
// in the binary.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer implements echo.Renderer over the embedded page templates.
// Templates are addressed by file name, e.g. "index.html".
type Renderer struct {
	templates *template.Template
}

// New parses the embedded templates.  Parsing happens once at startup, so a
// broken template fails the process immediately rather than on first render.
func New() *Renderer {
	return &Renderer{
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Render writes the named template to w with the given data.
func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
