package console

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/turismo/backoffice-console/internal/pkg/errorhandler"
	"github.com/turismo/backoffice-console/internal/pkg/logger"
	"github.com/turismo/backoffice-console/internal/pkg/resource"
	"github.com/turismo/backoffice-console/internal/pkg/response"
	"github.com/turismo/backoffice-console/internal/pkg/selector"
	"github.com/turismo/backoffice-console/internal/realtime"
	"github.com/turismo/backoffice-console/internal/screen"
)

// liveLoadTimeout bounds the first list fetch of a live connection, which
// outlives its request context.
const liveLoadTimeout = 30 * time.Second

// Handler serves the list, form and delete screens of one resource.
type Handler[W any, R any] struct {
	console *Console
	def     *screen.Definition[W, R]
	client  screen.Client[W, R]
}

// Register adds a resource to the console and its side menu.
func Register[W any, R any](c *Console, def *screen.Definition[W, R], client screen.Client[W, R]) *Handler[W, R] {
	h := &Handler[W, R]{console: c, def: def, client: client}
	c.menu = append(c.menu, MenuEntry{
		Label:     def.MenuLabel,
		ViewLabel: def.ViewLabel,
		NewLabel:  def.NewLabel,
		Path:      def.Path(),
	})
	c.resources = append(c.resources, h)
	return h
}

func (h *Handler[W, R]) path() string {
	return h.def.Path()
}

func (h *Handler[W, R]) routes() chi.Router {
	return h.Routes()
}

// Routes returns the resource router
func (h *Handler[W, R]) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	if h.console.liveEnabled() {
		r.Get("/live", h.Live)
	}

	r.Get("/new", h.NewForm)
	r.Post("/new", h.Create)
	r.Post("/", h.Create)

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/edit", h.EditForm)
		r.Post("/edit", h.Update)
		r.Put("/", h.Update)
		r.Get("/delete", h.ConfirmDelete)
		r.Post("/delete", h.Delete)
		r.Delete("/", h.Delete)
	})

	return r
}

// List handles GET /{resource}
func (h *Handler[W, R]) List(w http.ResponseWriter, r *http.Request) {
	rec := &screen.Recorder{}
	for _, n := range pendingNotifications(r.Context()) {
		rec.Notify(n)
	}
	ls := screen.NewListScreen(h.def, h.client, rec, nil)
	err := ls.Activate(r.Context())
	defer ls.Deactivate()

	status := http.StatusOK
	if err != nil {
		errorhandler.LogBackendError(r.Context(), h.def.Name, "list", err)
		status = statusFor(err)
	}

	if wantsJSON(r) {
		if err != nil {
			errorhandler.HandleError(r.Context(), w, status, "LIST_FAILED", h.def.Messages.LoadFailed, err, rec.Notifications())
			return
		}
		response.Screen(w, status, h.listView(ls.Items(), false), rec.Notifications(), nil)
		return
	}

	items := ls.Items()
	if err != nil {
		if c, ok := h.client.(cacher[R]); ok {
			items = c.Cached()
		}
	}
	h.console.render(w, r, status, pageList, h.def.Title, h.def.Path(), rec, h.listView(items, err != nil))
}

// cacher is implemented by clients that keep the last fetched list.
type cacher[R any] interface {
	Cached() []R
}

// Live handles GET /{resource}/live
func (h *Handler[W, R]) Live(w http.ResponseWriter, r *http.Request) {
	hub := h.console.hub

	ws, err := h.console.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Str("resource", h.def.Name).Msg("WebSocket upgrade failed")
		return
	}

	conn := realtime.NewConnection(h.def.Name, ws)
	hub.Register(conn)

	notifier := &liveNotifier{hub: hub, conn: conn}
	ls := screen.NewListScreen(h.def, h.client, notifier, nil)
	ls.OnChange(func(items []R) {
		hub.SendTo(conn, &realtime.Event{Type: realtime.EventList, Resource: h.def.Name, Data: h.listView(items, false)})
	})

	ctx, cancel := context.WithTimeout(context.Background(), liveLoadTimeout)
	defer cancel()
	if err := ls.Activate(ctx); err != nil {
		errorhandler.LogBackendError(r.Context(), h.def.Name, "live list", err)
	}

	hub.Serve(conn, ls.Deactivate)
}

// NewForm handles GET /{resource}/new
func (h *Handler[W, R]) NewForm(w http.ResponseWriter, r *http.Request) {
	rec := &screen.Recorder{}
	fs := screen.NewCreateScreen(h.def, h.client, h.formDeps(rec))
	fs.Init(r.Context())
	h.respondForm(w, r, http.StatusOK, fs, rec)
}

// EditForm handles GET /{resource}/{id}/edit
func (h *Handler[W, R]) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	rec := &screen.Recorder{}
	fs := screen.NewUpdateScreen(h.def, h.client, id, h.formDeps(rec))
	if err := fs.Init(r.Context()); err != nil {
		errorhandler.LogBackendError(r.Context(), h.def.Name, "get", err)
		if wantsJSON(r) {
			errorhandler.HandleError(r.Context(), w, statusFor(err), "LOAD_FAILED", h.def.Messages.LoadOneFailed, err, rec.Notifications())
			return
		}
		h.respondForm(w, r, statusFor(err), fs, rec)
		return
	}
	h.respondForm(w, r, http.StatusOK, fs, rec)
}

// Create handles POST /{resource}/new
func (h *Handler[W, R]) Create(w http.ResponseWriter, r *http.Request) {
	rec := &screen.Recorder{}
	fs := screen.NewCreateScreen(h.def, h.client, h.formDeps(rec))
	h.submit(w, r, fs, rec)
}

// Update handles POST /{resource}/{id}/edit
func (h *Handler[W, R]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	rec := &screen.Recorder{}
	fs := screen.NewUpdateScreen(h.def, h.client, id, h.formDeps(rec))
	h.submit(w, r, fs, rec)
}

func (h *Handler[W, R]) submit(w http.ResponseWriter, r *http.Request, fs *screen.FormScreen[W, R], rec *screen.Recorder) {
	values, err := h.readValues(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	// Selector options are only needed to re-render a rejected form.
	if err := fs.Load(r.Context()); err != nil {
		errorhandler.LogBackendError(r.Context(), h.def.Name, "get", err)
		if wantsJSON(r) {
			errorhandler.HandleError(r.Context(), w, statusFor(err), "LOAD_FAILED", h.def.Messages.LoadOneFailed, err, rec.Notifications())
			return
		}
		h.rerender(w, r, statusFor(err), fs, rec)
		return
	}

	out, err := fs.Submit(r.Context(), values)
	if err == nil {
		status := http.StatusOK
		if fs.Mode() == screen.ModeCreate {
			status = http.StatusCreated
		}
		if wantsJSON(r) {
			response.Screen(w, status, out, rec.Notifications(), redirectOf(rec))
			return
		}
		h.respondForm(w, r, status, fs, rec)
		return
	}

	var fe *selector.FieldError
	switch {
	case errors.Is(err, screen.ErrInvalidForm), errors.As(err, &fe):
		if wantsJSON(r) {
			errorhandler.HandleValidationError(r.Context(), w, screen.SummaryInvalidForm, fs.Errors(), rec.Notifications())
			return
		}
		h.rerender(w, r, http.StatusUnprocessableEntity, fs, rec)

	case errors.Is(err, screen.ErrSubmitInFlight):
		errorhandler.HandleError(r.Context(), w, http.StatusConflict, "SUBMIT_IN_FLIGHT", "Submit already in progress", err, rec.Notifications())

	case errors.Is(err, screen.ErrNotLoaded):
		if wantsJSON(r) {
			errorhandler.HandleError(r.Context(), w, http.StatusBadGateway, "LOAD_FAILED", h.def.Messages.LoadOneFailed, err, rec.Notifications())
			return
		}
		h.rerender(w, r, http.StatusBadGateway, fs, rec)

	default:
		errorhandler.LogBackendError(r.Context(), h.def.Name, string(fs.Mode()), err)
		if wantsJSON(r) {
			message := h.def.Messages.CreateFailed
			if fs.Mode() == screen.ModeUpdate {
				message = h.def.Messages.UpdateFailed
			}
			errorhandler.HandleError(r.Context(), w, statusFor(err), "SUBMIT_FAILED", message, err, rec.Notifications())
			return
		}
		h.rerender(w, r, statusFor(err), fs, rec)
	}
}

// rerender shows a form that stays open after a failed submit, with its
// selectors filled again.
func (h *Handler[W, R]) rerender(w http.ResponseWriter, r *http.Request, status int, fs *screen.FormScreen[W, R], rec *screen.Recorder) {
	fs.LoadReferences(r.Context())
	h.respondForm(w, r, status, fs, rec)
}

// ConfirmDelete handles GET /{resource}/{id}/delete
func (h *Handler[W, R]) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	item, err := h.client.GetByID(r.Context(), id)
	if err != nil {
		errorhandler.LogBackendError(r.Context(), h.def.Name, "get", err)
		if wantsJSON(r) {
			errorhandler.HandleError(r.Context(), w, statusFor(err), "LOAD_FAILED", h.def.Messages.LoadOneFailed, err, nil)
			return
		}
		rec := &screen.Recorder{}
		rec.Notify(screen.Notification{Severity: screen.SeverityError, Summary: screen.SummaryError, Detail: h.def.Messages.LoadOneFailed})
		h.List(w, withNotifications(r, rec))
		return
	}

	prompt := h.def.DeletePrompt(item)
	if wantsJSON(r) {
		response.OK(w, prompt)
		return
	}
	h.console.render(w, r, http.StatusOK, pageConfirm, prompt.Header, h.def.Path(), nil, confirmView{
		Prompt:     prompt,
		Action:     h.itemPath(id) + "/delete",
		CancelPath: h.def.Path(),
	})
}

// Delete handles POST /{resource}/{id}/delete. The prompt counts as accepted
// only when the request carries confirm=yes.
func (h *Handler[W, R]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	accepted, err := readConfirm(r)
	if err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if !accepted {
		if wantsJSON(r) {
			response.OK(w, map[string]bool{"deleted": false})
			return
		}
		http.Redirect(w, r, h.def.Path(), http.StatusSeeOther)
		return
	}

	rec := &screen.Recorder{}
	ls := screen.NewListScreen(h.def, h.client, rec, screen.ConfirmerFunc(func(context.Context, screen.Prompt) bool {
		return accepted
	}))
	if _, err := ls.RequestDeleteID(r.Context(), id, h.def.DefaultDeletePrompt()); err != nil {
		errorhandler.LogBackendError(r.Context(), h.def.Name, "delete", err)
		if wantsJSON(r) {
			errorhandler.HandleError(r.Context(), w, statusFor(err), "DELETE_FAILED", h.def.Messages.DeleteFailed, err, rec.Notifications())
			return
		}
		h.List(w, withNotifications(r, rec))
		return
	}

	if wantsJSON(r) {
		response.Screen(w, http.StatusOK, map[string]bool{"deleted": true}, rec.Notifications(), nil)
		return
	}
	h.List(w, withNotifications(r, rec))
}

func (h *Handler[W, R]) formDeps(rec *screen.Recorder) screen.FormDeps {
	return screen.FormDeps{Notifier: rec, Navigator: rec, Location: h.console.loc}
}

func (h *Handler[W, R]) itemPath(id int64) string {
	return h.def.Path() + "/" + strconv.FormatInt(id, 10)
}

func (h *Handler[W, R]) readValues(r *http.Request) (map[string]any, error) {
	if isJSONBody(r) {
		values := map[string]any{}
		if err := response.DecodeJSON(r.Body, &values); err != nil {
			return nil, err
		}
		return values, nil
	}
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return formValues(h.def.Fields, r.PostForm), nil
}

func (h *Handler[W, R]) respondForm(w http.ResponseWriter, r *http.Request, status int, fs *screen.FormScreen[W, R], rec *screen.Recorder) {
	view := h.formView(fs)
	if wantsJSON(r) {
		response.Screen(w, status, view, rec.Notifications(), redirectOf(rec))
		return
	}
	h.console.render(w, r, status, pageForm, view.Title, h.def.Path(), rec, view)
}

// readConfirm accepts confirm=yes from a form or {"confirm": true} from JSON.
func readConfirm(r *http.Request) (bool, error) {
	if isJSONBody(r) {
		var body struct {
			Confirm bool `json:"confirm"`
		}
		if err := response.DecodeJSON(r.Body, &body); err != nil {
			return false, err
		}
		return body.Confirm, nil
	}
	switch strings.ToLower(strings.TrimSpace(r.FormValue("confirm"))) {
	case "yes", "true", "1", "si", "sí":
		return true, nil
	}
	return false, nil
}

func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(w, "Invalid id")
		return 0, false
	}
	return id, true
}

func redirectOf(rec *screen.Recorder) *response.Redirect {
	path, after, ok := rec.Redirect()
	if !ok {
		return nil
	}
	return &response.Redirect{Path: path, AfterMS: after.Milliseconds()}
}

// statusFor maps a backend failure to the status the console answers with.
func statusFor(err error) int {
	switch {
	case errors.Is(err, resource.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, resource.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}

func wantsJSON(r *http.Request) bool {
	if r.URL.Query().Get("format") == "json" {
		return true
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json") || isJSONBody(r)
}

func isJSONBody(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

type pendingKey struct{}

// withNotifications carries toasts raised before a list re-render into it.
func withNotifications(r *http.Request, rec *screen.Recorder) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), pendingKey{}, rec.Notifications()))
}

func pendingNotifications(ctx context.Context) []screen.Notification {
	notes, _ := ctx.Value(pendingKey{}).([]screen.Notification)
	return notes
}

// liveNotifier forwards toasts of a live list to its browser.
type liveNotifier struct {
	hub  *realtime.Hub
	conn *realtime.Connection
}

func (n *liveNotifier) Notify(note screen.Notification) {
	n.hub.SendTo(n.conn, &realtime.Event{Type: realtime.EventNotification, Resource: n.conn.Topic, Data: note})
}
