package transport

import (
	"strings"
	"time"

	"github.com/turismo/backoffice-console/internal/pkg/selector"
)

// Form is the validated transport field-set.
type Form struct {
	Type        string `json:"type" validate:"required"`
	Company     string `json:"company" validate:"required"`
	Destination any    `json:"destination" validate:"required"`
}

func (f *Form) ToWrite(_ *time.Location) (Write, error) {
	destinationID, err := selector.ResolveID("destination", f.Destination)
	if err != nil {
		return Write{}, err
	}
	return Write{
		Type:          strings.TrimSpace(f.Type),
		Company:       strings.TrimSpace(f.Company),
		DestinationID: destinationID,
	}, nil
}
