package http

import (
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"
)

const pageTemplate = "layout"

// TemplateRenderer plugs html/template into echo's c.Render.
type TemplateRenderer struct {
	tmpl *template.Template
}

func NewTemplateRenderer(fsys fs.FS) (*TemplateRenderer, error) {
	t, err := template.ParseFS(fsys, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{tmpl: t}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}
