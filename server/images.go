package server

import (
	"net/http"

	"github.com/hibiki-board/hibiki/config"
)

// Serve stored originals and thumbnails by content digest. Files are
// immutable, so clients may cache them forever.
func serveImages(
	w http.ResponseWriter,
	r *http.Request,
	p map[string]string,
) {
	w.Header().Set("Cache-Control", "max-age=31536000, immutable")
	fs := http.FileServer(http.Dir(config.Server.Images.Root))
	r.URL.Path = p["path"]
	fs.ServeHTTP(w, r)
}
