package accommodation

import (
	"strings"
	"time"

	"github.com/turismo/backoffice-console/internal/pkg/selector"
)

// Form is the validated accommodation field-set.
type Form struct {
	Name        string `json:"name" validate:"required,min=2"`
	Type        string `json:"type"`
	Address     string `json:"address"`
	Destination any    `json:"destination" validate:"required"`
}

func (f *Form) ToWrite(_ *time.Location) (Write, error) {
	destinationID, err := selector.ResolveID("destination", f.Destination)
	if err != nil {
		return Write{}, err
	}
	return Write{
		Name:          strings.TrimSpace(f.Name),
		Type:          strings.TrimSpace(f.Type),
		Address:       strings.TrimSpace(f.Address),
		DestinationID: destinationID,
	}, nil
}
