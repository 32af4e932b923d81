package activity

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/turismo/backoffice-console/internal/pkg/selector"
	"github.com/turismo/backoffice-console/internal/pkg/validator"
)

func TestReadRoundTripsToWrite(t *testing.T) {
	payload := `{"id":8,"name":"Rafting","description":"Río Urubamba","extra_cost":"35.50","itinerary":{"id":9,"day":2}}`

	var r Read
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.ExtraCost != 35.5 || r.Itinerary.Label() != "Día 2" {
		t.Fatalf("unexpected activity %+v", r)
	}

	body, err := json.Marshal(r.ToWrite())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"name":"Rafting","description":"Río Urubamba","extra_cost":35.5,"itinerary_id":9}`
	if string(body) != want {
		t.Fatalf("expected %s, got %s", want, body)
	}
}

func TestFormToWrite(t *testing.T) {
	free := 0.0
	cost := 35.5

	tests := []struct {
		name     string
		form     Form
		want     Write
		errField string
	}{
		{
			name: "itinerary object",
			form: Form{Name: "Rafting ", Description: " Río", ExtraCost: &cost, Itinerary: map[string]any{"id": float64(9), "day": float64(2)}},
			want: Write{Name: "Rafting", Description: "Río", ExtraCost: 35.5, ItineraryID: 9},
		},
		{
			name: "zero cost",
			form: Form{Name: "Caminata", ExtraCost: &free, Itinerary: float64(9)},
			want: Write{Name: "Caminata", ExtraCost: 0, ItineraryID: 9},
		},
		{
			name:     "missing cost",
			form:     Form{Name: "Caminata", Itinerary: float64(9)},
			errField: "extra_cost",
		},
		{
			name:     "fractional itinerary id",
			form:     Form{Name: "Caminata", ExtraCost: &free, Itinerary: 9.5},
			errField: "itinerary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.form.ToWrite(time.UTC)
			if tt.errField != "" {
				var fe *selector.FieldError
				if !errors.As(err, &fe) || fe.Field != tt.errField {
					t.Fatalf("expected field error on %s, got %v", tt.errField, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestFormValidation(t *testing.T) {
	negative := -1.0
	errs := validator.Validate(&Form{Name: "R", ExtraCost: &negative})
	for _, field := range []string{"name", "extra_cost", "itinerary"} {
		if errs[field] == "" {
			t.Fatalf("expected error on %s, got %v", field, errs)
		}
	}
}
