// Package httputil centralizes JSON response writing so every handler emits
// the same envelopes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"captura/pkg/httperrors"
)

// WriteJSON renders v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a coded error into a {"message": ...} envelope.
// Uncoded errors collapse to a generic 500 so internals never leak.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "error interno del servidor"

	var coded *httperrors.Error
	if errors.As(err, &coded) {
		status = httperrors.ToHTTPStatus(coded.Code)
		message = coded.Message
	}

	WriteJSON(w, status, map[string]string{"message": message})
}
