// Package httptransport assembles the public router from the module handlers.
package httptransport

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registrar is anything that can mount its routes on the root router.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires all public endpoints: module routes, health and metrics.
func NewRouter(handlers ...Registrar) http.Handler {
	r := chi.NewRouter()

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "service": "jyotish"})
	})
	r.Handle("/metrics", promhttp.Handler())

	for _, h := range handlers {
		h.Register(r)
	}
	return r
}
