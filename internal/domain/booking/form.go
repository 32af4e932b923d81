package booking

import (
	"time"

	"github.com/turismo/backoffice-console/internal/pkg/selector"
)

// Form is the validated booking field-set. Customer and plan hold whatever the
// selector is bound to: a bare id or the expanded object.
type Form struct {
	BookingDate any    `json:"booking_date" validate:"required"`
	Status      string `json:"status" validate:"required,booking_status"`
	Customer    any    `json:"customer" validate:"required"`
	Plan        any    `json:"plan" validate:"required"`
}

func (f *Form) ToWrite(loc *time.Location) (Write, error) {
	customerID, err := selector.ResolveID("customer", f.Customer)
	if err != nil {
		return Write{}, &selector.FieldError{Field: "customer", Message: "Cliente inválido. Por favor seleccione un cliente."}
	}
	planID, err := selector.ResolveID("plan", f.Plan)
	if err != nil {
		return Write{}, &selector.FieldError{Field: "plan", Message: "Plan inválido. Por favor seleccione un plan."}
	}
	date, err := selector.NormalizeDate("booking_date", f.BookingDate, loc)
	if err != nil {
		return Write{}, err
	}

	return Write{
		BookingDate: date,
		Status:      f.Status,
		CustomerID:  customerID,
		PlanID:      planID,
	}, nil
}
