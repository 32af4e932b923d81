package accommodation

import (
	"context"
	"fmt"

	"github.com/turismo/backoffice-console/internal/domain/destination"
	"github.com/turismo/backoffice-console/internal/screen"
)

// Definition describes the accommodation screens. destinations feeds the
// destination selector.
func Definition(destinations func(context.Context) ([]destination.Read, error)) *screen.Definition[Write, Read] {
	return &screen.Definition[Write, Read]{
		Name:      "accommodations",
		Title:     "Alojamientos",
		NewTitle:  "Nuevo Alojamiento",
		EditTitle: "Editar Alojamiento",
		MenuLabel: "Alojamientos",
		ViewLabel: "Ver Alojamientos",
		NewLabel:  "Nuevo Alojamiento",
		Messages: screen.Messages{
			LoadFailed:    "No se pudieron cargar los alojamientos",
			LoadOneFailed: "No se pudo cargar el alojamiento",
			Created:       "Alojamiento creado correctamente",
			CreateFailed:  "No se pudo crear el alojamiento",
			Updated:       "Alojamiento actualizado correctamente",
			UpdateFailed:  "No se pudo actualizar el alojamiento",
			Deleted:       "Alojamiento eliminado correctamente",
			DeleteFailed:  "No se pudo eliminar el alojamiento",
		},
		ConfirmDelete: func(r Read) string {
			return fmt.Sprintf("¿Está seguro de que desea eliminar \"%s\"?", r.Name)
		},
		ID:    func(r Read) int64 { return r.ID },
		Label: func(r Read) string { return r.Name },
		Values: func(r Read) map[string]any {
			return map[string]any{
				"name":        r.Name,
				"type":        r.Type,
				"address":     r.Address,
				"destination": r.Destination.ID,
			}
		},
		NewForm: func() screen.Form[Write] { return &Form{} },
		Fields: []screen.Field{
			{Name: "name", Label: "Nombre", Kind: screen.KindText, Required: true},
			{Name: "type", Label: "Tipo", Kind: screen.KindText},
			{Name: "address", Label: "Dirección", Kind: screen.KindText},
			{Name: "destination", Label: "Destino", Kind: screen.KindSelect, Required: true, Reference: "destinations"},
		},
		References: []screen.Reference{
			screen.ReferenceTo("destinations", "No se pudieron cargar los destinos", destinations,
				func(d destination.Read) int64 { return d.ID },
				func(d destination.Read) string { return d.Name }),
		},
		Columns: []screen.Column[Read]{
			{Header: "Nombre", Value: func(r Read) string { return r.Name }},
			{Header: "Tipo", Value: func(r Read) string { return r.Type }},
			{Header: "Dirección", Value: func(r Read) string { return r.Address }},
			{Header: "Destino", Value: func(r Read) string { return r.Destination.Label() }},
		},
	}
}
