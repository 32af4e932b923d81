package booking

import "github.com/turismo/backoffice-console/internal/pkg/wire"

// Booking statuses
const (
	StatusPending  = "pending"
	StatusPaid     = "paid"
	StatusCanceled = "canceled"
)

// Write is the request body of create and update. booking_date is a calendar
// date, YYYY-MM-DD.
type Write struct {
	BookingDate string `json:"booking_date"`
	Status      string `json:"status"`
	CustomerID  int64  `json:"customer_id"`
	PlanID      int64  `json:"plan_id"`
}

// Read is a booking with its customer and plan expanded.
type Read struct {
	ID          int64    `json:"id"`
	BookingDate string   `json:"booking_date"`
	Status      string   `json:"status"`
	Customer    wire.Ref `json:"customer"`
	Plan        wire.Ref `json:"plan"`
}

func (r Read) ToWrite() Write {
	return Write{
		BookingDate: r.BookingDate,
		Status:      r.Status,
		CustomerID:  r.Customer.ID,
		PlanID:      r.Plan.ID,
	}
}

func (r Read) Identifier() int64 {
	return r.ID
}

// StatusLabel returns the Spanish label of a status.
func StatusLabel(status string) string {
	switch status {
	case StatusPending:
		return "Pendiente"
	case StatusPaid:
		return "Pagada"
	case StatusCanceled:
		return "Cancelada"
	}
	return status
}
