// Package web serves the embedded landing page.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticFiles embed.FS

// Prefix is the URL path the static files are mounted under.
const Prefix = "/static/"

// Handler serves the embedded files below Prefix.
func Handler() http.Handler {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// the embed directive guarantees the directory exists
		panic(err)
	}
	return http.StripPrefix(Prefix, http.FileServer(http.FS(sub)))
}
