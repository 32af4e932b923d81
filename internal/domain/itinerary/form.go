package itinerary

import (
	"strings"
	"time"

	"github.com/turismo/backoffice-console/internal/pkg/selector"
)

// Form is the validated itinerary field-set.
type Form struct {
	Day         int    `json:"day" validate:"required,min=1"`
	Description string `json:"description"`
	Plan        any    `json:"plan" validate:"required"`
}

func (f *Form) ToWrite(_ *time.Location) (Write, error) {
	planID, err := selector.ResolveID("plan", f.Plan)
	if err != nil {
		return Write{}, err
	}
	return Write{Day: f.Day, Description: strings.TrimSpace(f.Description), PlanID: planID}, nil
}
