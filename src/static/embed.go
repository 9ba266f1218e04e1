// Package static embeds the pre-built front-end served under /static.
package static

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed public/*.html public/*.js public/*.css
var files embed.FS

// FileSystem exposes the embedded public/ directory as its root.
func FileSystem() http.FileSystem {
	sub, err := fs.Sub(files, "public")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}
