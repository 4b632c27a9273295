package handler

import (
	"net/http"
	"strings"
)

// Uploads serves stored attachment files from the local upload directory.
// Bare directory paths 404 instead of rendering a file listing, so the
// attachment inventory cannot be enumerated.
func Uploads(dir string) http.Handler {
	files := http.StripPrefix("/uploads/", http.FileServer(http.Dir(dir)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		files.ServeHTTP(w, r)
	})
}
