package guide

import (
	"context"
	"fmt"

	"github.com/turismo/backoffice-console/internal/domain/plan"
	"github.com/turismo/backoffice-console/internal/screen"
)

// Definition describes the guide screens.
func Definition(plans func(context.Context) ([]plan.Read, error)) *screen.Definition[Write, Read] {
	return &screen.Definition[Write, Read]{
		Name:      "guides",
		Title:     "Guías",
		NewTitle:  "Nuevo Guía",
		EditTitle: "Editar Guía",
		MenuLabel: "Guías",
		ViewLabel: "Ver Guías",
		NewLabel:  "Nuevo Guía",
		Messages: screen.Messages{
			LoadFailed:    "No se pudieron cargar los guías",
			LoadOneFailed: "No se pudo cargar el guía",
			Created:       "Guía creado correctamente",
			CreateFailed:  "No se pudo crear el guía",
			Updated:       "Guía actualizado correctamente",
			UpdateFailed:  "No se pudo actualizar el guía",
			Deleted:       "Guía eliminado correctamente",
			DeleteFailed:  "No se pudo eliminar el guía",
		},
		ConfirmDelete: func(r Read) string {
			return fmt.Sprintf("¿Está seguro de que desea eliminar al guía \"%s\"?", r.Name)
		},
		ID:    func(r Read) int64 { return r.ID },
		Label: func(r Read) string { return r.Name },
		Values: func(r Read) map[string]any {
			return map[string]any{"name": r.Name, "phone": r.Phone, "language": r.Language, "plan": r.Plan.ID}
		},
		NewForm: func() screen.Form[Write] { return &Form{} },
		Fields: []screen.Field{
			{Name: "name", Label: "Nombre", Kind: screen.KindText, Required: true},
			{Name: "phone", Label: "Teléfono", Kind: screen.KindText, Required: true},
			{Name: "language", Label: "Idioma", Kind: screen.KindText, Required: true},
			{Name: "plan", Label: "Plan", Kind: screen.KindSelect, Required: true, Reference: "plans"},
		},
		References: []screen.Reference{
			screen.ReferenceTo("plans", "No se pudieron cargar los planes", plans,
				func(p plan.Read) int64 { return p.ID },
				func(p plan.Read) string { return p.Name }),
		},
		Columns: []screen.Column[Read]{
			{Header: "Nombre", Value: func(r Read) string { return r.Name }},
			{Header: "Teléfono", Value: func(r Read) string { return r.Phone }},
			{Header: "Idioma", Value: func(r Read) string { return r.Language }},
			{Header: "Plan", Value: func(r Read) string { return r.Plan.Label() }},
		},
	}
}
