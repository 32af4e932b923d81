package screen

import (
	"context"
	"sort"
	"time"

	"github.com/turismo/backoffice-console/internal/pkg/stream"
)

// DefaultNavigateDelay leaves the success toast visible before returning to the list.
const DefaultNavigateDelay = 1500 * time.Millisecond

// Client is the resource client a screen drives.
type Client[W any, R any] interface {
	ListAll(ctx context.Context) ([]R, error)
	GetByID(ctx context.Context, id int64) (R, error)
	Create(ctx context.Context, in W) (R, error)
	Update(ctx context.Context, id int64, in W) (R, error)
	Delete(ctx context.Context, id int64) error
	Subscribe(fn func([]R)) stream.Subscription
}

// Form is a bound, validatable field-set that normalizes into a write shape.
type Form[W any] interface {
	ToWrite(loc *time.Location) (W, error)
}

// FieldKind drives how a field is rendered and how submitted text is coerced.
type FieldKind string

const (
	KindText     FieldKind = "text"
	KindTextarea FieldKind = "textarea"
	KindEmail    FieldKind = "email"
	KindNumber   FieldKind = "number"
	KindInteger  FieldKind = "integer"
	KindDate     FieldKind = "date"
	KindSelect   FieldKind = "select"
)

// Option is one choice of a selector.
type Option struct {
	Value any    `json:"value"`
	Label string `json:"label"`
}

// Field describes one form input. Select fields take their options either
// from Options or from the reference list named by Reference.
type Field struct {
	Name      string    `json:"name"`
	Label     string    `json:"label"`
	Kind      FieldKind `json:"kind"`
	Required  bool      `json:"required"`
	Reference string    `json:"reference,omitempty"`
	Options   []Option  `json:"options,omitempty"`
}

// Reference is an entity list loaded to populate a selector.
type Reference struct {
	Name       string
	LoadFailed string
	Load       func(ctx context.Context) ([]Option, error)
}

// Column is one list table column.
type Column[R any] struct {
	Header string
	Value  func(R) string
}

// Messages are the localized toast details of one resource.
type Messages struct {
	LoadFailed    string
	LoadOneFailed string
	Created       string
	CreateFailed  string
	Updated       string
	UpdateFailed  string
	Deleted       string
	DeleteFailed  string
}

// Definition describes everything a screen needs to know about one resource.
type Definition[W any, R any] struct {
	Name      string // plural path segment, e.g. "bookings"
	Title     string
	NewTitle  string
	EditTitle string
	MenuLabel string
	ViewLabel string
	NewLabel  string

	Messages      Messages
	ConfirmDelete func(R) string

	ID     func(R) int64
	Label  func(R) string
	Values func(R) map[string]any

	// Defaults pre-fill an empty create form.
	Defaults map[string]any

	NewForm    func() Form[W]
	Fields     []Field
	References []Reference
	Columns    []Column[R]

	NavigateDelay time.Duration
}

// Path is the list screen path.
func (d *Definition[W, R]) Path() string {
	return "/" + d.Name
}

// DeletePrompt builds the confirmation dialog for deleting item.
func (d *Definition[W, R]) DeletePrompt(item R) Prompt {
	if d.ConfirmDelete != nil {
		return deletePrompt(d.ConfirmDelete(item))
	}
	return deletePrompt(defaultDeleteMessage)
}

// DefaultDeletePrompt is the confirmation dialog used when the entity itself
// is not at hand.
func (d *Definition[W, R]) DefaultDeletePrompt() Prompt {
	return deletePrompt(defaultDeleteMessage)
}

const defaultDeleteMessage = "¿Está seguro de que desea eliminar este registro?"

func deletePrompt(message string) Prompt {
	return Prompt{
		Header:      "Confirmar Eliminación",
		Message:     message,
		AcceptLabel: "Sí, eliminar",
		RejectLabel: "Cancelar",
	}
}

func (d *Definition[W, R]) navigateDelay() time.Duration {
	if d.NavigateDelay > 0 {
		return d.NavigateDelay
	}
	return DefaultNavigateDelay
}

// OptionsFrom turns a loaded entity list into selector options sorted by label.
func OptionsFrom[R any](items []R, id func(R) int64, label func(R) string) []Option {
	out := make([]Option, 0, len(items))
	for _, item := range items {
		out = append(out, Option{Value: id(item), Label: label(item)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// ReferenceTo builds a Reference backed by another resource's list.
func ReferenceTo[R any](name, loadFailed string, list func(ctx context.Context) ([]R, error), id func(R) int64, label func(R) string) Reference {
	return Reference{
		Name:       name,
		LoadFailed: loadFailed,
		Load: func(ctx context.Context) ([]Option, error) {
			items, err := list(ctx)
			if err != nil {
				return nil, err
			}
			return OptionsFrom(items, id, label), nil
		},
	}
}
