package itinerary

import (
	"testing"

	"github.com/turismo/backoffice-console/internal/pkg/validator"
	"github.com/turismo/backoffice-console/internal/pkg/wire"
)

func TestDayMustBePositive(t *testing.T) {
	errs := validator.Validate(&Form{Day: 0, Plan: float64(1)})
	if errs["day"] == "" {
		t.Fatalf("expected error on day, got %v", errs)
	}
	errs = validator.Validate(&Form{Day: 1, Plan: float64(1)})
	if errs != nil {
		t.Fatalf("expected valid form, got %v", errs)
	}
}

func TestTitle(t *testing.T) {
	r := Read{ID: 1, Day: 3, Plan: wire.Ref{ID: 2, Name: "Sur"}}
	if r.Title() != "Día 3 - Sur" {
		t.Fatalf("unexpected title %q", r.Title())
	}
	if got := Definition(nil).DeletePrompt(r).Message; got != "¿Está seguro de que desea eliminar el Día 3 del itinerario?" {
		t.Fatalf("unexpected prompt %q", got)
	}
}
