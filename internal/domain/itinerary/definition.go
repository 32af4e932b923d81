package itinerary

import (
	"context"
	"fmt"
	"strconv"

	"github.com/turismo/backoffice-console/internal/domain/plan"
	"github.com/turismo/backoffice-console/internal/screen"
)

// Definition describes the itinerary screens.
func Definition(plans func(context.Context) ([]plan.Read, error)) *screen.Definition[Write, Read] {
	return &screen.Definition[Write, Read]{
		Name:      "itineraries",
		Title:     "Itinerarios",
		NewTitle:  "Nuevo Itinerario",
		EditTitle: "Editar Itinerario",
		MenuLabel: "Itinerarios",
		ViewLabel: "Ver Itinerarios",
		NewLabel:  "Nuevo Itinerario",
		Messages: screen.Messages{
			LoadFailed:    "No se pudieron cargar los itinerarios",
			LoadOneFailed: "No se pudo cargar el itinerario",
			Created:       "Itinerario creado correctamente",
			CreateFailed:  "No se pudo crear el itinerario",
			Updated:       "Itinerario actualizado correctamente",
			UpdateFailed:  "No se pudo actualizar el itinerario",
			Deleted:       "Itinerario eliminado correctamente",
			DeleteFailed:  "No se pudo eliminar el itinerario",
		},
		ConfirmDelete: func(r Read) string {
			return fmt.Sprintf("¿Está seguro de que desea eliminar el Día %d del itinerario?", r.Day)
		},
		ID:    func(r Read) int64 { return r.ID },
		Label: Read.Title,
		Values: func(r Read) map[string]any {
			return map[string]any{"day": r.Day, "description": r.Description, "plan": r.Plan.ID}
		},
		NewForm: func() screen.Form[Write] { return &Form{} },
		Fields: []screen.Field{
			{Name: "day", Label: "Día", Kind: screen.KindInteger, Required: true},
			{Name: "description", Label: "Descripción", Kind: screen.KindTextarea},
			{Name: "plan", Label: "Plan", Kind: screen.KindSelect, Required: true, Reference: "plans"},
		},
		References: []screen.Reference{
			screen.ReferenceTo("plans", "No se pudieron cargar los planes", plans,
				func(p plan.Read) int64 { return p.ID },
				func(p plan.Read) string { return p.Name }),
		},
		Columns: []screen.Column[Read]{
			{Header: "Día", Value: func(r Read) string { return strconv.Itoa(r.Day) }},
			{Header: "Descripción", Value: func(r Read) string { return r.Description }},
			{Header: "Plan", Value: func(r Read) string { return r.Plan.Label() }},
		},
	}
}
