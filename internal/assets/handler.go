package assets

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

var contentTypes = map[string]string{
	".css":   "text/css; charset=utf-8",
	".js":    "application/javascript",
	".json":  "application/json",
	".png":   "image/png",
	".jpg":   "image/jpeg",
	".jpeg":  "image/jpeg",
	".gif":   "image/gif",
	".svg":   "image/svg+xml",
	".woff":  "font/woff",
	".woff2": "font/woff2",
	".ttf":   "font/ttf",
	".ico":   "image/x-icon",
}

// ContentType resolves the Content-Type for an asset path by extension.
func ContentType(p string) string {
	ext := strings.ToLower(path.Ext(p))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// hashedNameRe matches names produced by the asset pipeline (app-4f9c21ab.css).
var hashedNameRe = regexp.MustCompile(`-[0-9a-f]{8}\.[a-z0-9]+$`)

// Handler serves compiled assets under /dist/. In development it reads the
// on-disk dist directory so a fresh asset build is picked up without
// recompiling; in production it serves the embedded copy.
func Handler(isDev bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/dist/")
		if name == "" || name != path.Clean(name) || strings.Contains(name, "..") {
			http.NotFound(w, r)
			return
		}

		var (
			data []byte
			err  error
		)
		if isDev {
			data, err = os.ReadFile(filepath.Join(DefaultDistDir, filepath.FromSlash(name)))
		} else {
			data, err = distFS.ReadFile("dist/" + name)
		}
		if err != nil {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Content-Type", ContentType(name))
		if hashedNameRe.MatchString(name) {
			// Hashed names change with content, so they can be cached forever.
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		}
		_, _ = w.Write(data)
	})
}
