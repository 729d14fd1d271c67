// Package server handles client requests for HTML page and JSON API
// endpoints
package server

import (
	"compress/gzip"
	"fmt"
	"net/http"

	"github.com/dimfeld/httptreemux"
	"github.com/go-playground/log"
	"github.com/gorilla/handlers"
	"github.com/hibiki-board/hibiki/config"
	"github.com/hibiki-board/hibiki/util"
	"github.com/sebest/xff"
)

// Start parses the configuration and starts the web server
func Start() (err error) {
	r, err := createRouter()
	if err != nil {
		return
	}
	addr := config.Server.Server.Address
	log.Info("listening on " + addr)

	err = http.ListenAndServe(addr, r)
	if err != nil {
		return util.WrapError("error starting web server", err)
	}
	return
}

// Create the monolithic router for routing HTTP requests. Separated into own
// function for easier testability.
func createRouter() (http.Handler, error) {
	r := httptreemux.New()
	r.NotFoundHandler = text404
	r.PanicHandler = textErrorPage

	// JSON API
	r.GET("/json/boards", wrapHandler(serveBoardList))
	r.GET("/json/:board/", serveBoardThreads)
	r.GET("/json/:board/:thread", serveThreadPosts)

	// Captcha issuance
	r.GET("/captcha/new", wrapHandler(serveNewCaptcha))

	// Post creation
	r.POST("/post", wrapHandler(createPost))

	// Stored images and thumbnails
	r.GET("/images/*path", serveImages)

	// Administration
	r.POST("/admin/login", wrapHandler(login))
	r.POST("/admin/register", wrapHandler(register))
	r.POST("/admin/boards", wrapHandler(createBoard))
	r.POST("/admin/bans", wrapHandler(createBan))

	h := http.Handler(r)
	h = handlers.CompressHandlerLevel(h, gzip.DefaultCompression)
	if config.Server.Server.ReverseProxied {
		xffParser, err := xff.Default()
		if err != nil {
			return nil, err
		}
		h = xffParser.Handler(h)
	}

	return h, nil
}

// Adapter for http.HandlerFunc -> httptreemux.HandlerFunc
func wrapHandler(fn http.HandlerFunc) httptreemux.HandlerFunc {
	return func(
		w http.ResponseWriter,
		r *http.Request,
		_ map[string]string,
	) {
		fn(w, r)
	}
}

func text404(w http.ResponseWriter, r *http.Request) {
	http.Error(w, "404 not found", 404)
}

func textErrorPage(w http.ResponseWriter, r *http.Request, err interface{}) {
	http.Error(w, fmt.Sprintf("500 %s", err), 500)
	log.Errorf("panic serving %s: %s", r.RemoteAddr, err)
}
