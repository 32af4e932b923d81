package destination

import (
	"fmt"
	"strconv"

	"github.com/turismo/backoffice-console/internal/screen"
)

// Definition describes the destination screens.
func Definition() *screen.Definition[Write, Read] {
	return &screen.Definition[Write, Read]{
		Name:      "destinations",
		Title:     "Destinos",
		NewTitle:  "Nuevo Destino",
		EditTitle: "Editar Destino",
		MenuLabel: "Destinos",
		ViewLabel: "Ver Destinos",
		NewLabel:  "Nuevo Destino",
		Messages: screen.Messages{
			LoadFailed:    "No se pudieron cargar los destinos",
			LoadOneFailed: "No se pudo cargar el destino",
			Created:       "Destino creado correctamente",
			CreateFailed:  "No se pudo crear el destino",
			Updated:       "Destino actualizado correctamente",
			UpdateFailed:  "No se pudo actualizar el destino",
			Deleted:       "Destino eliminado correctamente",
			DeleteFailed:  "No se pudo eliminar el destino",
		},
		ConfirmDelete: func(r Read) string {
			return fmt.Sprintf("¿Está seguro de que desea eliminar el destino \"%s\"?", r.Name)
		},
		ID:    func(r Read) int64 { return r.ID },
		Label: func(r Read) string { return r.Name },
		Values: func(r Read) map[string]any {
			return map[string]any{"name": r.Name, "country": r.Country, "city": r.City}
		},
		NewForm: func() screen.Form[Write] { return &Form{} },
		Fields: []screen.Field{
			{Name: "name", Label: "Nombre", Kind: screen.KindText, Required: true},
			{Name: "country", Label: "País", Kind: screen.KindText},
			{Name: "city", Label: "Ciudad", Kind: screen.KindText},
		},
		Columns: []screen.Column[Read]{
			{Header: "Nombre", Value: func(r Read) string { return r.Name }},
			{Header: "Ubicación", Value: Read.Place},
			{Header: "Alojamientos", Value: func(r Read) string { return strconv.Itoa(len(r.Accommodations)) }},
			{Header: "Transportes", Value: func(r Read) string { return strconv.Itoa(len(r.Transports)) }},
		},
	}
}
