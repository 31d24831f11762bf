// Package httpserver constructs the process's HTTP server.
package httpserver

import (
	"net/http"
	"time"
)

// New builds the API server. Write and idle timeouts are generous because
// chart and panchangam requests can spend a while in the cusp and end-time
// solvers before the first byte goes out.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
