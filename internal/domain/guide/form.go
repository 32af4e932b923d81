package guide

import (
	"strings"
	"time"

	"github.com/turismo/backoffice-console/internal/pkg/selector"
)

// Form is the validated guide field-set.
type Form struct {
	Name     string `json:"name" validate:"required,min=2"`
	Phone    string `json:"phone" validate:"required"`
	Language string `json:"language" validate:"required"`
	Plan     any    `json:"plan" validate:"required"`
}

func (f *Form) ToWrite(_ *time.Location) (Write, error) {
	planID, err := selector.ResolveID("plan", f.Plan)
	if err != nil {
		return Write{}, err
	}
	return Write{
		Name:     strings.TrimSpace(f.Name),
		Phone:    strings.TrimSpace(f.Phone),
		Language: strings.TrimSpace(f.Language),
		PlanID:   planID,
	}, nil
}
