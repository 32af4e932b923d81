package screen

import (
	"context"
	"sync"
	"time"
)

// Severity of a toast notification
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarn    Severity = "warn"
	SeverityError   Severity = "error"
)

// Common summaries
const (
	SummarySuccess     = "Éxito"
	SummaryError       = "Error"
	SummaryInvalidForm = "Formulario inválido"
	DetailInvalidForm  = "Por favor, complete todos los campos requeridos correctamente"
)

// Notification is a transient toast shown to the operator.
type Notification struct {
	Severity Severity `json:"severity"`
	Summary  string   `json:"summary"`
	Detail   string   `json:"detail"`
}

// Notifier shows notifications.
type Notifier interface {
	Notify(n Notification)
}

// Prompt is a confirmation dialog.
type Prompt struct {
	Header      string `json:"header"`
	Message     string `json:"message"`
	AcceptLabel string `json:"accept_label"`
	RejectLabel string `json:"reject_label"`
}

// Confirmer asks the operator to accept or reject a prompt.
type Confirmer interface {
	Confirm(ctx context.Context, p Prompt) bool
}

// ConfirmerFunc adapts a function to Confirmer.
type ConfirmerFunc func(ctx context.Context, p Prompt) bool

func (f ConfirmerFunc) Confirm(ctx context.Context, p Prompt) bool {
	return f(ctx, p)
}

// Navigator moves the operator to another screen after a delay.
type Navigator interface {
	Navigate(path string, after time.Duration)
}

// Recorder collects notifications and the last navigation request of one
// screen interaction. It is safe for concurrent use.
type Recorder struct {
	mu            sync.Mutex
	notifications []Notification
	redirect      string
	redirectAfter time.Duration
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

func (r *Recorder) Navigate(path string, after time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.redirect = path
	r.redirectAfter = after
}

// Notifications returns a copy of everything notified so far.
func (r *Recorder) Notifications() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Redirect returns the requested navigation, if any.
func (r *Recorder) Redirect() (string, time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.redirect, r.redirectAfter, r.redirect != ""
}

func success(n Notifier, detail string) {
	n.Notify(Notification{Severity: SeveritySuccess, Summary: SummarySuccess, Detail: detail})
}

func failure(n Notifier, detail string) {
	n.Notify(Notification{Severity: SeverityError, Summary: SummaryError, Detail: detail})
}
