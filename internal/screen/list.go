package screen

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/turismo/backoffice-console/internal/pkg/stream"
)

// State of a list screen
type State string

const (
	StateIdle       State = "idle"
	StateLoading    State = "loading"
	StateLoaded     State = "loaded"
	StateLoadFailed State = "load_failed"
)

// ListScreen shows every entity of one resource and deletes on confirmation.
type ListScreen[W any, R any] struct {
	def       *Definition[W, R]
	client    Client[W, R]
	notifier  Notifier
	confirmer Confirmer

	mu       sync.Mutex
	state    State
	items    []R
	sub      stream.Subscription
	active   bool
	gen      uint64
	onChange func([]R)
}

// NewListScreen creates an idle list screen.
func NewListScreen[W any, R any](def *Definition[W, R], client Client[W, R], notifier Notifier, confirmer Confirmer) *ListScreen[W, R] {
	return &ListScreen[W, R]{
		def:       def,
		client:    client,
		notifier:  notifier,
		confirmer: confirmer,
		state:     StateIdle,
	}
}

// OnChange registers fn to be called with every list the screen renders after
// activation, including live cache republishes.
func (s *ListScreen[W, R]) OnChange(fn func([]R)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Activate loads the list and starts following the cache stream. On failure
// the previously rendered items stay as they were.
func (s *ListScreen[W, R]) Activate(ctx context.Context) error {
	s.mu.Lock()
	s.state = StateLoading
	s.active = true
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	items, err := s.client.ListAll(ctx)

	s.mu.Lock()
	if !s.current(gen) {
		s.mu.Unlock()
		log.Debug().Str("resource", s.def.Name).Msg("Dropping list response for inactive screen")
		return nil
	}
	if err != nil {
		s.state = StateLoadFailed
		s.mu.Unlock()
		failure(s.notifier, s.def.Messages.LoadFailed)
		return err
	}
	s.state = StateLoaded
	s.items = items
	s.mu.Unlock()

	sub := s.client.Subscribe(func(items []R) { s.apply(gen, items) })

	s.mu.Lock()
	if !s.current(gen) {
		s.mu.Unlock()
		sub.Unsubscribe()
		return nil
	}
	old := s.sub
	s.sub = sub
	s.mu.Unlock()

	if old != nil {
		old.Unsubscribe()
	}
	return nil
}

// Deactivate releases the cache subscription. Responses still in flight are
// dropped when they arrive.
func (s *ListScreen[W, R]) Deactivate() {
	s.mu.Lock()
	s.active = false
	sub := s.sub
	s.sub = nil
	s.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}

// RequestDelete asks for confirmation and deletes item when accepted. It
// reports whether the prompt was accepted. The row disappears only once the
// cache republishes.
func (s *ListScreen[W, R]) RequestDelete(ctx context.Context, item R) (bool, error) {
	return s.RequestDeleteID(ctx, s.def.ID(item), s.def.DeletePrompt(item))
}

// RequestDeleteID is RequestDelete for an entity known only by id. Exactly one
// delete is sent once prompt is accepted.
func (s *ListScreen[W, R]) RequestDeleteID(ctx context.Context, id int64, prompt Prompt) (bool, error) {
	if !s.confirmer.Confirm(ctx, prompt) {
		return false, nil
	}

	if err := s.client.Delete(ctx, id); err != nil {
		failure(s.notifier, s.def.Messages.DeleteFailed)
		return true, err
	}

	success(s.notifier, s.def.Messages.Deleted)
	return true, nil
}

// Items returns the rendered list.
func (s *ListScreen[W, R]) Items() []R {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]R, len(s.items))
	copy(out, s.items)
	return out
}

// State returns the current load state.
func (s *ListScreen[W, R]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Definition returns the resource definition.
func (s *ListScreen[W, R]) Definition() *Definition[W, R] {
	return s.def
}

func (s *ListScreen[W, R]) apply(gen uint64, items []R) {
	s.mu.Lock()
	if !s.current(gen) {
		s.mu.Unlock()
		return
	}
	s.items = items
	fn := s.onChange
	s.mu.Unlock()

	if fn != nil {
		fn(items)
	}
}

// current must be called with mu held.
func (s *ListScreen[W, R]) current(gen uint64) bool {
	return s.active && s.gen == gen
}
