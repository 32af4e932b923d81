package activity

import (
	"context"
	"fmt"

	"github.com/turismo/backoffice-console/internal/domain/itinerary"
	"github.com/turismo/backoffice-console/internal/screen"
)

// Definition describes the activity screens.
func Definition(itineraries func(context.Context) ([]itinerary.Read, error)) *screen.Definition[Write, Read] {
	return &screen.Definition[Write, Read]{
		Name:      "activities",
		Title:     "Actividades",
		NewTitle:  "Nueva Actividad",
		EditTitle: "Editar Actividad",
		MenuLabel: "Actividades",
		ViewLabel: "Ver Actividades",
		NewLabel:  "Nueva Actividad",
		Messages: screen.Messages{
			LoadFailed:    "No se pudieron cargar las actividades",
			LoadOneFailed: "No se pudo cargar la actividad",
			Created:       "Actividad creada correctamente",
			CreateFailed:  "No se pudo crear la actividad",
			Updated:       "Actividad actualizada correctamente",
			UpdateFailed:  "No se pudo actualizar la actividad",
			Deleted:       "Actividad eliminada correctamente",
			DeleteFailed:  "No se pudo eliminar la actividad",
		},
		ConfirmDelete: func(r Read) string {
			return fmt.Sprintf("¿Está seguro de que desea eliminar la actividad \"%s\"?", r.Name)
		},
		ID:    func(r Read) int64 { return r.ID },
		Label: func(r Read) string { return r.Name },
		Values: func(r Read) map[string]any {
			return map[string]any{
				"name":        r.Name,
				"description": r.Description,
				"extra_cost":  r.ExtraCost.Float(),
				"itinerary":   r.Itinerary.ID,
			}
		},
		NewForm: func() screen.Form[Write] { return &Form{} },
		Fields: []screen.Field{
			{Name: "name", Label: "Nombre", Kind: screen.KindText, Required: true},
			{Name: "description", Label: "Descripción", Kind: screen.KindTextarea},
			{Name: "extra_cost", Label: "Costo adicional", Kind: screen.KindNumber, Required: true},
			{Name: "itinerary", Label: "Itinerario", Kind: screen.KindSelect, Required: true, Reference: "itineraries"},
		},
		References: []screen.Reference{
			screen.ReferenceTo("itineraries", "No se pudieron cargar los itinerarios", itineraries,
				func(i itinerary.Read) int64 { return i.ID },
				itinerary.Read.Title),
		},
		Columns: []screen.Column[Read]{
			{Header: "Nombre", Value: func(r Read) string { return r.Name }},
			{Header: "Descripción", Value: func(r Read) string { return r.Description }},
			{Header: "Costo adicional", Value: func(r Read) string { return r.ExtraCost.String() }},
			{Header: "Itinerario", Value: func(r Read) string { return r.Itinerary.Label() }},
		},
	}
}
