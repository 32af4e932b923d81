package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestScreenEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	Screen(w, http.StatusCreated, map[string]int{"id": 3},
		[]map[string]string{{"severity": "success", "detail": "Reserva creada correctamente"}},
		&Redirect{Path: "/bookings", AfterMS: 1500})

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("unexpected content type %q", ct)
	}

	var body struct {
		Success       bool                `json:"success"`
		Notifications []map[string]string `json:"notifications"`
		Redirect      *Redirect           `json:"redirect"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if !body.Success || len(body.Notifications) != 1 || body.Redirect == nil || body.Redirect.Path != "/bookings" {
		t.Fatalf("unexpected envelope %s", w.Body.String())
	}
}

func TestScreenErrorCarriesFieldDetails(t *testing.T) {
	w := httptest.NewRecorder()
	ScreenError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Formulario inválido",
		map[string]string{"plan": "Este campo es requerido"}, nil)

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Success || body.Error == nil || body.Error.Details["plan"] == "" {
		t.Fatalf("unexpected envelope %s", w.Body.String())
	}
}
