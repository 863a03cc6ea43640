package httpserver

import (
	"net/http"
	"time"
)

// New returns a server tuned for the capture API: small JSON request and
// response bodies, no streaming or uploads.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// above the 30s handler timeout so the timeout middleware gets to
		// write its response before the connection is cut
		WriteTimeout: 35 * time.Second,
		IdleTimeout:  time.Minute,
	}
}
