package activity

import (
	"strings"
	"time"

	"github.com/turismo/backoffice-console/internal/pkg/selector"
	"github.com/turismo/backoffice-console/internal/pkg/wire"
)

// Form is the validated activity field-set.
type Form struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Description string   `json:"description"`
	ExtraCost   *float64 `json:"extra_cost" validate:"required,gte=0"`
	Itinerary   any      `json:"itinerary" validate:"required"`
}

func (f *Form) ToWrite(_ *time.Location) (Write, error) {
	if f.ExtraCost == nil {
		return Write{}, &selector.FieldError{Field: "extra_cost", Message: "Este campo es requerido"}
	}
	itineraryID, err := selector.ResolveID("itinerary", f.Itinerary)
	if err != nil {
		return Write{}, err
	}
	return Write{
		Name:        strings.TrimSpace(f.Name),
		Description: strings.TrimSpace(f.Description),
		ExtraCost:   wire.Amount(*f.ExtraCost),
		ItineraryID: itineraryID,
	}, nil
}
