package handlers

import (
	"net/http"
	"path/filepath"
)

// NewIndexHandler serves the HTML landing page at the root path.
func NewIndexHandler(publicDir string) http.HandlerFunc {
	index := filepath.Join(publicDir, "index.html")
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, index)
	}
}

// NotFound writes the plain-text body for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "Not Found", http.StatusNotFound)
}
