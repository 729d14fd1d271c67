package server

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/go-playground/log"
	"github.com/hibiki-board/hibiki/common"
)

// Map error to HTTP status code and log server faults. Client-caused errors
// carry their status on common.StatusError and are not logged.
func httpError(w http.ResponseWriter, r *http.Request, err error) {
	code := 500
	if se, ok := err.(common.StatusError); ok {
		code = se.Code
	}
	http.Error(w, err.Error(), code)
	if !common.CanIgnoreClientError(err) {
		ip, ipErr := clientIP(r)
		if ipErr != nil {
			ip = r.RemoteAddr
		}
		log.Errorf("server: %s: %s", ip, err)
	}
}

// Write JSON to the client
func serveJSON(w http.ResponseWriter, r *http.Request, data interface{}) {
	buf, err := json.Marshal(data)
	if err != nil {
		httpError(w, r, err)
		return
	}
	h := w.Header()
	h.Set("Content-Type", "application/json")
	w.Write(buf)
}

// Extract the client IP of a request. Behind a reverse proxy the xff
// middleware has already rewritten RemoteAddr.
func clientIP(r *http.Request) (string, error) {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// No port in address
		ip = r.RemoteAddr
	}
	if net.ParseIP(ip) == nil {
		return "", common.ErrInvalidInput("invalid client IP")
	}
	return ip, nil
}
