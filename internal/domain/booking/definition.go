package booking

import (
	"context"
	"fmt"

	"github.com/turismo/backoffice-console/internal/domain/customer"
	"github.com/turismo/backoffice-console/internal/domain/plan"
	"github.com/turismo/backoffice-console/internal/screen"
)

// Statuses offered by the status selector.
var Statuses = []screen.Option{
	{Value: StatusPending, Label: StatusLabel(StatusPending)},
	{Value: StatusPaid, Label: StatusLabel(StatusPaid)},
	{Value: StatusCanceled, Label: StatusLabel(StatusCanceled)},
}

// Definition describes the booking screens. customers and plans feed the two
// selectors.
func Definition(
	customers func(context.Context) ([]customer.Read, error),
	plans func(context.Context) ([]plan.Read, error),
) *screen.Definition[Write, Read] {
	return &screen.Definition[Write, Read]{
		Name:      "bookings",
		Title:     "Reservas",
		NewTitle:  "Nueva Reserva",
		EditTitle: "Editar Reserva",
		MenuLabel: "Reservas",
		ViewLabel: "Ver Reservas",
		NewLabel:  "Nueva Reserva",
		Messages: screen.Messages{
			LoadFailed:    "No se pudieron cargar las reservas",
			LoadOneFailed: "No se pudo cargar la reserva",
			Created:       "Reserva creada correctamente",
			CreateFailed:  "No se pudo crear la reserva",
			Updated:       "Reserva actualizada correctamente",
			UpdateFailed:  "No se pudo actualizar la reserva",
			Deleted:       "Reserva eliminada correctamente",
			DeleteFailed:  "No se pudo eliminar la reserva",
		},
		ConfirmDelete: func(r Read) string {
			return fmt.Sprintf("¿Está seguro de que desea eliminar la reserva de %s?", r.Customer.Label())
		},
		ID: func(r Read) int64 { return r.ID },
		Label: func(r Read) string {
			return r.Customer.Label() + " - " + r.Plan.Label() + " (" + r.BookingDate + ")"
		},
		Values: func(r Read) map[string]any {
			return map[string]any{
				"booking_date": r.BookingDate,
				"status":       r.Status,
				"customer":     r.Customer.ID,
				"plan":         r.Plan.ID,
			}
		},
		Defaults: map[string]any{"status": StatusPending},
		NewForm:  func() screen.Form[Write] { return &Form{} },
		Fields: []screen.Field{
			{Name: "booking_date", Label: "Fecha de reserva", Kind: screen.KindDate, Required: true},
			{Name: "status", Label: "Estado", Kind: screen.KindSelect, Required: true, Options: Statuses},
			{Name: "customer", Label: "Cliente", Kind: screen.KindSelect, Required: true, Reference: "customers"},
			{Name: "plan", Label: "Plan", Kind: screen.KindSelect, Required: true, Reference: "plans"},
		},
		References: []screen.Reference{
			screen.ReferenceTo("customers", "No se pudieron cargar los clientes", customers,
				func(c customer.Read) int64 { return c.ID },
				customer.Read.FullName),
			screen.ReferenceTo("plans", "No se pudieron cargar los planes", plans,
				func(p plan.Read) int64 { return p.ID },
				func(p plan.Read) string { return p.Name }),
		},
		Columns: []screen.Column[Read]{
			{Header: "Cliente", Value: func(r Read) string { return r.Customer.Label() }},
			{Header: "Plan", Value: func(r Read) string { return r.Plan.Label() }},
			{Header: "Fecha", Value: func(r Read) string { return r.BookingDate }},
			{Header: "Estado", Value: func(r Read) string { return StatusLabel(r.Status) }},
		},
	}
}
