// Package web carries the board page and its assets, compiled into the
// binary so the server needs no asset directory at runtime.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl static/*
var assets embed.FS

// StaticFS returns a file system rooted at the static assets, for
// serving under /static/.
func StaticFS() http.FileSystem {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		// cannot happen with a well-formed embed; serve nothing
		return http.FS(embed.FS{})
	}
	return http.FS(sub)
}

// Templates parses the embedded page templates.
func Templates() *template.Template {
	return template.Must(template.ParseFS(assets, "templates/*.tmpl"))
}
