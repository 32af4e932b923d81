package screen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/turismo/backoffice-console/internal/pkg/selector"
	"github.com/turismo/backoffice-console/internal/pkg/validator"
)

// Mode of a form screen
type Mode string

const (
	ModeCreate Mode = "create"
	ModeUpdate Mode = "update"
)

// FormDeps are the collaborators of a form screen.
type FormDeps struct {
	Notifier  Notifier
	Navigator Navigator
	Location  *time.Location
}

// FormScreen collects, validates and submits one entity.
type FormScreen[W any, R any] struct {
	def       *Definition[W, R]
	client    Client[W, R]
	notifier  Notifier
	navigator Navigator
	loc       *time.Location
	mode      Mode
	id        int64

	mu         sync.Mutex
	values     map[string]any
	options    map[string][]Option
	errors     map[string]string
	touched    map[string]bool
	loaded     bool
	submitting bool
}

// NewCreateScreen creates an empty create form.
func NewCreateScreen[W any, R any](def *Definition[W, R], client Client[W, R], deps FormDeps) *FormScreen[W, R] {
	return newFormScreen(def, client, deps, ModeCreate, 0)
}

// NewUpdateScreen creates an edit form for the entity with the given id.
func NewUpdateScreen[W any, R any](def *Definition[W, R], client Client[W, R], id int64, deps FormDeps) *FormScreen[W, R] {
	return newFormScreen(def, client, deps, ModeUpdate, id)
}

func newFormScreen[W any, R any](def *Definition[W, R], client Client[W, R], deps FormDeps, mode Mode, id int64) *FormScreen[W, R] {
	loc := deps.Location
	if loc == nil {
		loc = time.Local
	}
	values := map[string]any{}
	if mode == ModeCreate {
		for k, v := range def.Defaults {
			values[k] = v
		}
	}
	return &FormScreen[W, R]{
		def:       def,
		client:    client,
		notifier:  deps.Notifier,
		navigator: deps.Navigator,
		loc:       loc,
		mode:      mode,
		id:        id,
		values:    values,
		options:   map[string][]Option{},
		errors:    map[string]string{},
		touched:   map[string]bool{},
		loaded:    mode == ModeCreate,
	}
}

// Init loads the reference lists feeding the selectors and, in update mode,
// the entity itself. A failing reference list only costs its own selector.
func (s *FormScreen[W, R]) Init(ctx context.Context) error {
	s.LoadReferences(ctx)
	return s.Load(ctx)
}

// LoadReferences fills the selector options. Each failing list raises its own
// toast and leaves its selector empty.
func (s *FormScreen[W, R]) LoadReferences(ctx context.Context) {
	for _, ref := range s.def.References {
		opts, err := ref.Load(ctx)
		if err != nil {
			log.Warn().Err(err).Str("resource", s.def.Name).Str("reference", ref.Name).Msg("Failed to load selector options")
			failure(s.notifier, ref.LoadFailed)
			continue
		}
		s.mu.Lock()
		s.options[ref.Name] = opts
		s.mu.Unlock()
	}
}

// Load fetches the entity being edited. It is a no-op in create mode.
func (s *FormScreen[W, R]) Load(ctx context.Context) error {
	if s.mode != ModeUpdate {
		return nil
	}

	item, err := s.client.GetByID(ctx, s.id)
	if err != nil {
		failure(s.notifier, s.def.Messages.LoadOneFailed)
		return fmt.Errorf("load %s %d: %w", s.def.Name, s.id, err)
	}

	s.mu.Lock()
	s.values = s.def.Values(item)
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// Submit binds values, validates and normalizes them, and creates or updates
// the entity. Nothing is sent while the form is invalid.
func (s *FormScreen[W, R]) Submit(ctx context.Context, values map[string]any) (R, error) {
	var zero R

	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return zero, ErrSubmitInFlight
	}
	if !s.loaded {
		s.mu.Unlock()
		failure(s.notifier, s.def.Messages.LoadOneFailed)
		return zero, ErrNotLoaded
	}
	s.submitting = true
	s.values = values
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.submitting = false
		s.mu.Unlock()
	}()

	form := s.def.NewForm()
	fieldErrs := bind(values, form)
	for field, msg := range validator.Validate(form) {
		if _, ok := fieldErrs[field]; !ok {
			fieldErrs[field] = msg
		}
	}
	if len(fieldErrs) > 0 {
		s.reject(fieldErrs)
		s.notifier.Notify(Notification{Severity: SeverityWarn, Summary: SummaryInvalidForm, Detail: DetailInvalidForm})
		return zero, ErrInvalidForm
	}

	in, err := form.ToWrite(s.loc)
	if err != nil {
		var fe *selector.FieldError
		if errors.As(err, &fe) {
			s.reject(map[string]string{fe.Field: fe.Message})
			failure(s.notifier, fe.Message)
		} else {
			failure(s.notifier, err.Error())
		}
		return zero, err
	}

	var (
		out    R
		okMsg  string
		errMsg string
	)
	if s.mode == ModeUpdate {
		out, err = s.client.Update(ctx, s.id, in)
		okMsg, errMsg = s.def.Messages.Updated, s.def.Messages.UpdateFailed
	} else {
		out, err = s.client.Create(ctx, in)
		okMsg, errMsg = s.def.Messages.Created, s.def.Messages.CreateFailed
	}
	if err != nil {
		failure(s.notifier, errMsg)
		return zero, err
	}

	s.mu.Lock()
	s.errors = map[string]string{}
	s.mu.Unlock()

	success(s.notifier, okMsg)
	if s.navigator != nil {
		s.navigator.Navigate(s.def.Path(), s.def.navigateDelay())
	}
	return out, nil
}

func (s *FormScreen[W, R]) reject(fieldErrs map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errors = fieldErrs
	for _, f := range s.def.Fields {
		s.touched[f.Name] = true
	}
	for name := range fieldErrs {
		s.touched[name] = true
	}
}

// Mode returns create or update.
func (s *FormScreen[W, R]) Mode() Mode {
	return s.mode
}

// ID returns the entity id being edited, zero in create mode.
func (s *FormScreen[W, R]) ID() int64 {
	return s.id
}

// Values returns the current field values.
func (s *FormScreen[W, R]) Values() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]any, len(s.values))
	for k, v := range s.values {
		out[k] = v
	}
	return out
}

// Errors returns the per-field messages of the last rejected submit.
func (s *FormScreen[W, R]) Errors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.errors))
	for k, v := range s.errors {
		out[k] = v
	}
	return out
}

// Touched reports whether a field should show its inline error.
func (s *FormScreen[W, R]) Touched(field string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touched[field]
}

// Options returns the loaded options of a reference list.
func (s *FormScreen[W, R]) Options(reference string) []Option {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.options[reference]
}

// Loaded reports whether the form holds the values it edits.
func (s *FormScreen[W, R]) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Definition returns the resource definition.
func (s *FormScreen[W, R]) Definition() *Definition[W, R] {
	return s.def
}

// bind copies values into form through their JSON representation so that
// selector fields keep either a bare id or a whole object.
func bind(values map[string]any, form any) map[string]string {
	errs := map[string]string{}

	data, err := json.Marshal(values)
	if err != nil {
		errs["_"] = "Valor inválido"
		return errs
	}
	if err := json.Unmarshal(data, form); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			errs[typeErr.Field] = "Valor inválido"
		} else {
			errs["_"] = "Valor inválido"
		}
	}
	return errs
}
