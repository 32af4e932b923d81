package screen

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/turismo/backoffice-console/internal/pkg/selector"
	"github.com/turismo/backoffice-console/internal/pkg/stream"
)

type tripWrite struct {
	Name        string `json:"name"`
	PlanID      int64  `json:"plan_id"`
	BookingDate string `json:"booking_date"`
}

type planRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type tripRead struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	BookingDate string  `json:"booking_date"`
	Plan        planRef `json:"plan"`
}

type tripForm struct {
	Name        string `json:"name" validate:"required,min=2"`
	Plan        any    `json:"plan" validate:"required"`
	BookingDate string `json:"booking_date" validate:"required,calendar_date"`
}

func (f *tripForm) ToWrite(loc *time.Location) (tripWrite, error) {
	planID, err := selector.ResolveID("plan", f.Plan)
	if err != nil {
		return tripWrite{}, err
	}
	date, err := selector.NormalizeDate("booking_date", f.BookingDate, loc)
	if err != nil {
		return tripWrite{}, err
	}
	return tripWrite{Name: f.Name, PlanID: planID, BookingDate: date}, nil
}

var errBackend = errors.New("backend unavailable")

// fakeClient records calls and serves an in-memory list.
type fakeClient struct {
	mu        sync.Mutex
	items     []tripRead
	cache     *stream.Subject[[]tripRead]
	listErr   error
	getErr    error
	writeErr  error
	deleteErr error
	block     chan struct{}
	calls     []string
	written   []tripWrite
}

func newFakeClient(items ...tripRead) *fakeClient {
	return &fakeClient{items: items, cache: stream.NewSubject([]tripRead{})}
}

func (c *fakeClient) record(call string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, call)
}

func (c *fakeClient) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

func (c *fakeClient) ListAll(ctx context.Context) ([]tripRead, error) {
	c.record("list")
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	if c.listErr != nil {
		c.mu.Unlock()
		return nil, c.listErr
	}
	items := append([]tripRead(nil), c.items...)
	c.mu.Unlock()
	c.cache.Publish(items)
	return items, nil
}

func (c *fakeClient) GetByID(ctx context.Context, id int64) (tripRead, error) {
	c.record(fmt.Sprintf("get %d", id))
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return tripRead{}, c.getErr
	}
	for _, item := range c.items {
		if item.ID == id {
			return item, nil
		}
	}
	return tripRead{}, errors.New("not found")
}

func (c *fakeClient) Create(ctx context.Context, in tripWrite) (tripRead, error) {
	c.record("create")
	if c.block != nil {
		<-c.block
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writeErr != nil {
		return tripRead{}, c.writeErr
	}
	c.written = append(c.written, in)
	item := tripRead{ID: int64(len(c.items) + 1), Name: in.Name, BookingDate: in.BookingDate, Plan: planRef{ID: in.PlanID}}
	c.items = append(c.items, item)
	return item, nil
}

func (c *fakeClient) Update(ctx context.Context, id int64, in tripWrite) (tripRead, error) {
	c.record(fmt.Sprintf("update %d", id))
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.writeErr != nil {
		return tripRead{}, c.writeErr
	}
	c.written = append(c.written, in)
	for i, item := range c.items {
		if item.ID == id {
			c.items[i] = tripRead{ID: id, Name: in.Name, BookingDate: in.BookingDate, Plan: planRef{ID: in.PlanID}}
			return c.items[i], nil
		}
	}
	return tripRead{}, errors.New("not found")
}

func (c *fakeClient) Delete(ctx context.Context, id int64) error {
	c.record(fmt.Sprintf("delete %d", id))
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.deleteErr
}

func (c *fakeClient) Subscribe(fn func([]tripRead)) stream.Subscription {
	return c.cache.Subscribe(fn)
}

func tripDefinition(refs ...Reference) *Definition[tripWrite, tripRead] {
	return &Definition[tripWrite, tripRead]{
		Name:  "trips",
		Title: "Viajes",
		Messages: Messages{
			LoadFailed:    "No se pudieron cargar los viajes",
			LoadOneFailed: "No se pudo cargar el viaje",
			Created:       "Viaje creado correctamente",
			CreateFailed:  "No se pudo crear el viaje",
			Updated:       "Viaje actualizado correctamente",
			UpdateFailed:  "No se pudo actualizar el viaje",
			Deleted:       "Viaje eliminado correctamente",
			DeleteFailed:  "No se pudo eliminar el viaje",
		},
		ConfirmDelete: func(r tripRead) string {
			return fmt.Sprintf("¿Está seguro de que desea eliminar el viaje \"%s\"?", r.Name)
		},
		ID:    func(r tripRead) int64 { return r.ID },
		Label: func(r tripRead) string { return r.Name },
		Values: func(r tripRead) map[string]any {
			return map[string]any{"name": r.Name, "plan": r.Plan.ID, "booking_date": r.BookingDate}
		},
		NewForm: func() Form[tripWrite] { return &tripForm{} },
		Fields: []Field{
			{Name: "name", Label: "Nombre", Kind: KindText, Required: true},
			{Name: "plan", Label: "Plan", Kind: KindSelect, Required: true, Reference: "plans"},
			{Name: "booking_date", Label: "Fecha", Kind: KindDate, Required: true},
		},
		References: refs,
	}
}

type fixedConfirmer bool

func (c fixedConfirmer) Confirm(ctx context.Context, p Prompt) bool {
	return bool(c)
}

type navigation struct {
	path  string
	after time.Duration
}

type fakeNavigator struct {
	mu    sync.Mutex
	moves []navigation
}

func (n *fakeNavigator) Navigate(path string, after time.Duration) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.moves = append(n.moves, navigation{path, after})
}
