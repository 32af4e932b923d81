package customer

import (
	"strings"
	"time"
)

// Form is the validated customer field-set.
type Form struct {
	FirstName string `json:"first_name" validate:"required,min=2"`
	LastName  string `json:"last_name" validate:"required,min=2"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone"`
}

func (f *Form) ToWrite(_ *time.Location) (Write, error) {
	return Write{
		FirstName: strings.TrimSpace(f.FirstName),
		LastName:  strings.TrimSpace(f.LastName),
		Email:     strings.ToLower(strings.TrimSpace(f.Email)),
		Phone:     strings.TrimSpace(f.Phone),
	}, nil
}
