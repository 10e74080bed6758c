package server

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

// uiFS is the embedded dashboard bundle, injected by the binary's embed.go
// via SetUI before the server is constructed. Nil when the bundle was not
// built in (API-only mode).
var uiFS fs.FS

// SetUI installs the embedded filesystem the dashboard is served from.
func SetUI(fsys fs.FS) {
	uiFS = fsys
}

// spaHandler serves the dashboard bundle. Requests for paths that do not
// exist in the bundle fall back to index.html so client-side routes like
// /habits or /papers resolve after a hard refresh.
func spaHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if uiFS == nil {
			respondError(w, http.StatusNotFound, "dashboard assets not embedded; run 'make build'")
			return
		}

		name := path.Clean(strings.TrimPrefix(r.URL.Path, "/"))
		if name == "." || name == "" {
			name = "index.html"
		}

		if f, err := uiFS.Open(name); err != nil {
			name = "index.html"
		} else {
			f.Close()
		}

		http.ServeFileFS(w, r, uiFS, name)
	}
}
