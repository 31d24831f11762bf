// Package shared holds the JSON envelope helpers every module handler uses,
// so error shapes and content types stay consistent across endpoints.
package shared

import (
	"encoding/json"
	"net/http"

	apperrors "jyotish/pkg/domain-errors"
)

// WriteJSON serializes v with status 200.
func WriteJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// WriteRaw writes pre-serialized JSON (cached responses).
func WriteRaw(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// WriteError translates a domain error into the JSON error envelope.
func WriteError(w http.ResponseWriter, err error) {
	code := apperrors.CodeOf(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apperrors.ToHTTPStatus(code))
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":   string(code),
		"message": err.Error(),
	})
}
