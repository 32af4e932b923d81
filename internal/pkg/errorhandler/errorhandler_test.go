package errorhandler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/turismo/backoffice-console/internal/pkg/response"
)

func TestHandleErrorWritesEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(context.Background(), w, http.StatusBadGateway, "LIST_FAILED", "No se pudieron cargar las reservas",
		errors.New("connection refused"), []map[string]string{{"severity": "error"}})

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
	var body response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Success || body.Error == nil || body.Error.Code != "LIST_FAILED" || body.Notifications == nil {
		t.Fatalf("unexpected envelope %s", w.Body.String())
	}
}

func TestHandleValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	HandleValidationError(context.Background(), w, "Formulario inválido", map[string]string{"email": "Correo inválido"}, nil)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", w.Code)
	}
	var body response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Error == nil || body.Error.Details["email"] != "Correo inválido" {
		t.Fatalf("unexpected envelope %s", w.Body.String())
	}
}
