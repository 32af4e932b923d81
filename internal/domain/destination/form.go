package destination

import (
	"strings"
	"time"
)

// Form is the validated destination field-set.
type Form struct {
	Name    string `json:"name" validate:"required,min=2"`
	Country string `json:"country"`
	City    string `json:"city"`
}

func (f *Form) ToWrite(_ *time.Location) (Write, error) {
	return Write{
		Name:    strings.TrimSpace(f.Name),
		Country: strings.TrimSpace(f.Country),
		City:    strings.TrimSpace(f.City),
	}, nil
}
