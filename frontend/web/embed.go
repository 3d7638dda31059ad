// Package web holds the page templates and static assets of the frontend.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"path"
)

const baseTemplate = "base.html"

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Static returns the static assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadTemplates parses every page template together with the base layout,
// keyed by file name.
func LoadTemplates() (map[string]*template.Template, error) {
	entries, err := fs.ReadDir(templateFS, "templates")
	if err != nil {
		return nil, err
	}
	templates := make(map[string]*template.Template)
	for _, e := range entries {
		name := e.Name()
		if path.Ext(name) != ".html" || name == baseTemplate {
			continue
		}
		tmpl, err := template.New(baseTemplate).ParseFS(templateFS,
			path.Join("templates", baseTemplate),
			path.Join("templates", name),
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}

func MustLoadTemplates() map[string]*template.Template {
	templates, err := LoadTemplates()
	if err != nil {
		panic(err)
	}
	return templates
}
