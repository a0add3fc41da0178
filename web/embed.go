// Package web holds the embedded page templates and static assets for the
// landing page.
package web

import (
	"embed"
	"html/template"
	"io/fs"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static/*
var staticFS embed.FS

// Templates parses every page template with the given functions.
func Templates(funcs template.FuncMap) (*template.Template, error) {
	return template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
}

// Static returns the asset tree rooted at static/, so "site.css" resolves to
// static/site.css.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		// static/ is embedded at compile time; Sub only fails on a bad path.
		panic(err)
	}
	return sub
}
