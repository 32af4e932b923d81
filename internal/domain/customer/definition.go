package customer

import (
	"fmt"

	"github.com/turismo/backoffice-console/internal/screen"
)

// Definition describes the customer screens.
func Definition() *screen.Definition[Write, Read] {
	return &screen.Definition[Write, Read]{
		Name:      "customers",
		Title:     "Clientes",
		NewTitle:  "Nuevo Cliente",
		EditTitle: "Editar Cliente",
		MenuLabel: "Clientes",
		ViewLabel: "Ver Clientes",
		NewLabel:  "Nuevo Cliente",
		Messages: screen.Messages{
			LoadFailed:    "No se pudieron cargar los clientes",
			LoadOneFailed: "No se pudo cargar el cliente",
			Created:       "Cliente creado correctamente",
			CreateFailed:  "No se pudo crear el cliente",
			Updated:       "Cliente actualizado correctamente",
			UpdateFailed:  "No se pudo actualizar el cliente",
			Deleted:       "Cliente eliminado correctamente",
			DeleteFailed:  "No se pudo eliminar el cliente",
		},
		ConfirmDelete: func(r Read) string {
			return fmt.Sprintf("¿Está seguro de que desea eliminar a %s %s?", r.FirstName, r.LastName)
		},
		ID:    func(r Read) int64 { return r.ID },
		Label: Read.FullName,
		Values: func(r Read) map[string]any {
			return map[string]any{
				"first_name": r.FirstName,
				"last_name":  r.LastName,
				"email":      r.Email,
				"phone":      r.Phone,
			}
		},
		NewForm: func() screen.Form[Write] { return &Form{} },
		Fields: []screen.Field{
			{Name: "first_name", Label: "Nombre", Kind: screen.KindText, Required: true},
			{Name: "last_name", Label: "Apellido", Kind: screen.KindText, Required: true},
			{Name: "email", Label: "Correo electrónico", Kind: screen.KindEmail, Required: true},
			{Name: "phone", Label: "Teléfono", Kind: screen.KindText},
		},
		Columns: []screen.Column[Read]{
			{Header: "Nombre", Value: Read.FullName},
			{Header: "Correo", Value: func(r Read) string { return r.Email }},
			{Header: "Teléfono", Value: func(r Read) string { return r.Phone }},
		},
	}
}
