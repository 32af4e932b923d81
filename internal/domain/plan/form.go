package plan

import (
	"strings"
	"time"

	"github.com/turismo/backoffice-console/internal/pkg/selector"
	"github.com/turismo/backoffice-console/internal/pkg/wire"
)

// Form is the validated plan field-set.
type Form struct {
	Name        string   `json:"name" validate:"required,min=2"`
	Description string   `json:"description"`
	BasePrice   *float64 `json:"base_price" validate:"required,gte=0"`
	Destination any      `json:"destination" validate:"required"`
}

func (f *Form) ToWrite(_ *time.Location) (Write, error) {
	if f.BasePrice == nil {
		return Write{}, &selector.FieldError{Field: "base_price", Message: "Este campo es requerido"}
	}
	destinationID, err := selector.ResolveID("destination", f.Destination)
	if err != nil {
		return Write{}, err
	}
	return Write{
		Name:          strings.TrimSpace(f.Name),
		Description:   strings.TrimSpace(f.Description),
		BasePrice:     wire.Amount(*f.BasePrice),
		DestinationID: destinationID,
	}, nil
}
