package httputil

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"captura/pkg/httperrors"
)

func TestWriteError(t *testing.T) {
	t.Run("bad request carries message", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, httperrors.New(httperrors.CodeBadRequest, "Código postal inválido."))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
		}

		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["message"] != "Código postal inválido." {
			t.Fatalf("unexpected message %q", body["message"])
		}
	})

	t.Run("wrapped coded error still resolves", func(t *testing.T) {
		w := httptest.NewRecorder()
		wrapped := fmt.Errorf("create: %w", httperrors.New(httperrors.CodeInternal, "No se pudo guardar el beneficiario."))
		WriteError(w, wrapped)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["message"] != "No se pudo guardar el beneficiario." {
			t.Fatalf("unexpected message %q", body["message"])
		}
	})

	t.Run("uncoded error stays generic", func(t *testing.T) {
		w := httptest.NewRecorder()
		WriteError(w, errors.New("pq: connection refused"))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
		}
		var body map[string]string
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if body["message"] != "error interno del servidor" {
			t.Fatalf("internal detail leaked: %q", body["message"])
		}
	})
}
