package transport

import (
	"context"
	"fmt"

	"github.com/turismo/backoffice-console/internal/domain/destination"
	"github.com/turismo/backoffice-console/internal/screen"
)

// Definition describes the transport screens.
func Definition(destinations func(context.Context) ([]destination.Read, error)) *screen.Definition[Write, Read] {
	return &screen.Definition[Write, Read]{
		Name:      "transports",
		Title:     "Transportes",
		NewTitle:  "Nuevo Transporte",
		EditTitle: "Editar Transporte",
		MenuLabel: "Transportes",
		ViewLabel: "Ver Transportes",
		NewLabel:  "Nuevo Transporte",
		Messages: screen.Messages{
			LoadFailed:    "No se pudieron cargar los transportes",
			LoadOneFailed: "No se pudo cargar el transporte",
			Created:       "Transporte creado correctamente",
			CreateFailed:  "No se pudo crear el transporte",
			Updated:       "Transporte actualizado correctamente",
			UpdateFailed:  "No se pudo actualizar el transporte",
			Deleted:       "Transporte eliminado correctamente",
			DeleteFailed:  "No se pudo eliminar el transporte",
		},
		ConfirmDelete: func(r Read) string {
			return fmt.Sprintf("¿Está seguro de que desea eliminar a %s?", r.Company)
		},
		ID:    func(r Read) int64 { return r.ID },
		Label: func(r Read) string { return r.Company + " (" + r.Type + ")" },
		Values: func(r Read) map[string]any {
			return map[string]any{"type": r.Type, "company": r.Company, "destination": r.Destination.ID}
		},
		NewForm: func() screen.Form[Write] { return &Form{} },
		Fields: []screen.Field{
			{Name: "type", Label: "Tipo", Kind: screen.KindText, Required: true},
			{Name: "company", Label: "Empresa", Kind: screen.KindText, Required: true},
			{Name: "destination", Label: "Destino", Kind: screen.KindSelect, Required: true, Reference: "destinations"},
		},
		References: []screen.Reference{
			screen.ReferenceTo("destinations", "No se pudieron cargar los destinos", destinations,
				func(d destination.Read) int64 { return d.ID },
				func(d destination.Read) string { return d.Name }),
		},
		Columns: []screen.Column[Read]{
			{Header: "Tipo", Value: func(r Read) string { return r.Type }},
			{Header: "Empresa", Value: func(r Read) string { return r.Company }},
			{Header: "Destino", Value: func(r Read) string { return r.Destination.Label() }},
		},
	}
}
