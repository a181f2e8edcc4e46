// Package web embeds the HTML templates and static assets served by the front end.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses every page template. Each page is a named template that pulls in the
// shared "header" and "footer" blocks.
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

// MustTemplates is Templates for boot code.
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Static exposes the assets under /static.
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
