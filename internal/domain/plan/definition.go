package plan

import (
	"context"
	"fmt"
	"strconv"

	"github.com/turismo/backoffice-console/internal/domain/destination"
	"github.com/turismo/backoffice-console/internal/screen"
)

// Definition describes the tourist plan screens.
func Definition(destinations func(context.Context) ([]destination.Read, error)) *screen.Definition[Write, Read] {
	return &screen.Definition[Write, Read]{
		Name:      "plans",
		Title:     "Planes Turísticos",
		NewTitle:  "Nuevo Plan",
		EditTitle: "Editar Plan",
		MenuLabel: "Planes Turísticos",
		ViewLabel: "Ver Planes",
		NewLabel:  "Nuevo Plan",
		Messages: screen.Messages{
			LoadFailed:    "No se pudieron cargar los planes",
			LoadOneFailed: "No se pudo cargar el plan",
			Created:       "Plan creado correctamente",
			CreateFailed:  "No se pudo crear el plan",
			Updated:       "Plan actualizado correctamente",
			UpdateFailed:  "No se pudo actualizar el plan",
			Deleted:       "Plan eliminado correctamente",
			DeleteFailed:  "No se pudo eliminar el plan",
		},
		ConfirmDelete: func(r Read) string {
			return fmt.Sprintf("¿Está seguro de que desea eliminar el plan \"%s\"?", r.Name)
		},
		ID:    func(r Read) int64 { return r.ID },
		Label: func(r Read) string { return r.Name },
		Values: func(r Read) map[string]any {
			return map[string]any{
				"name":        r.Name,
				"description": r.Description,
				"base_price":  r.BasePrice.Float(),
				"destination": r.Destination.ID,
			}
		},
		NewForm: func() screen.Form[Write] { return &Form{} },
		Fields: []screen.Field{
			{Name: "name", Label: "Nombre", Kind: screen.KindText, Required: true},
			{Name: "description", Label: "Descripción", Kind: screen.KindTextarea},
			{Name: "base_price", Label: "Precio base", Kind: screen.KindNumber, Required: true},
			{Name: "destination", Label: "Destino", Kind: screen.KindSelect, Required: true, Reference: "destinations"},
		},
		References: []screen.Reference{
			screen.ReferenceTo("destinations", "No se pudieron cargar los destinos", destinations,
				func(d destination.Read) int64 { return d.ID },
				func(d destination.Read) string { return d.Name }),
		},
		Columns: []screen.Column[Read]{
			{Header: "Nombre", Value: func(r Read) string { return r.Name }},
			{Header: "Destino", Value: func(r Read) string { return r.Destination.Label() }},
			{Header: "Precio base", Value: func(r Read) string { return r.BasePrice.String() }},
			{Header: "Días", Value: func(r Read) string { return strconv.Itoa(len(r.Itineraries)) }},
			{Header: "Guías", Value: func(r Read) string { return strconv.Itoa(len(r.Guides)) }},
		},
	}
}
