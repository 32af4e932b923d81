package console

import (
	"bytes"
	"embed"
	"html/template"
	"math"
	"net/http"
	"strconv"

	"github.com/turismo/backoffice-console/internal/pkg/logger"
	"github.com/turismo/backoffice-console/internal/pkg/response"
	"github.com/turismo/backoffice-console/internal/screen"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageList    = "list.html"
	pageForm    = "form.html"
	pageConfirm = "confirm.html"
)

var funcs = template.FuncMap{
	"refreshSeconds": func(ms int64) int64 {
		return int64(math.Ceil(float64(ms) / 1000))
	},
}

var pages = func() map[string]*template.Template {
	out := map[string]*template.Template{}
	for _, name := range []string{pageList, pageForm, pageConfirm} {
		out[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name))
	}
	return out
}()

type layoutData struct {
	Title         string
	Menu          []MenuEntry
	Active        string
	Notifications []screen.Notification
	Redirect      *response.Redirect
	Body          any
}

type listView struct {
	Title         string   `json:"title"`
	NewLabel      string   `json:"new_label"`
	NewPath       string   `json:"new_path"`
	LivePath      string   `json:"live_path,omitempty"`
	Columns       []string `json:"columns"`
	Rows          []row    `json:"rows"`
	Failed        bool     `json:"failed,omitempty"`
	FailedMessage string   `json:"-"`
}

type row struct {
	ID         int64    `json:"id"`
	Label      string   `json:"label"`
	Cells      []string `json:"cells"`
	EditPath   string   `json:"edit_path"`
	DeletePath string   `json:"delete_path"`
}

type formView struct {
	Title      string            `json:"title"`
	Mode       screen.Mode       `json:"mode"`
	ID         int64             `json:"id,omitempty"`
	Action     string            `json:"action"`
	CancelPath string            `json:"cancel_path"`
	Loaded     bool              `json:"loaded"`
	Fields     []fieldView       `json:"fields"`
	Values     map[string]any    `json:"values"`
	Errors     map[string]string `json:"errors,omitempty"`
}

type fieldView struct {
	Name     string       `json:"name"`
	Label    string       `json:"label"`
	Kind     string       `json:"kind"`
	Required bool         `json:"required"`
	Value    string       `json:"value"`
	Error    string       `json:"error,omitempty"`
	Options  []optionView `json:"options,omitempty"`
}

type optionView struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected,omitempty"`
}

type confirmView struct {
	Prompt     screen.Prompt
	Action     string
	CancelPath string
}

func (h *Handler[W, R]) listView(items []R, failed bool) listView {
	v := listView{
		Title:         h.def.Title,
		NewLabel:      h.def.NewLabel,
		NewPath:       h.def.Path() + "/new",
		Rows:          make([]row, 0, len(items)),
		Failed:        failed,
		FailedMessage: h.def.Messages.LoadFailed,
	}
	if h.console.liveEnabled() {
		v.LivePath = h.def.Path() + "/live"
	}
	for _, col := range h.def.Columns {
		v.Columns = append(v.Columns, col.Header)
	}
	for _, item := range items {
		id := h.def.ID(item)
		cells := make([]string, 0, len(h.def.Columns))
		for _, col := range h.def.Columns {
			cells = append(cells, col.Value(item))
		}
		v.Rows = append(v.Rows, row{
			ID:         id,
			Label:      h.def.Label(item),
			Cells:      cells,
			EditPath:   h.itemPath(id) + "/edit",
			DeletePath: h.itemPath(id) + "/delete",
		})
	}
	return v
}

func (h *Handler[W, R]) formView(fs *screen.FormScreen[W, R]) formView {
	values := fs.Values()
	errs := fs.Errors()

	v := formView{
		Title:      h.def.NewTitle,
		Mode:       fs.Mode(),
		Action:     h.def.Path() + "/new",
		CancelPath: h.def.Path(),
		Loaded:     fs.Loaded(),
		Values:     values,
		Errors:     errs,
	}
	if fs.Mode() == screen.ModeUpdate {
		v.Title = h.def.EditTitle
		v.ID = fs.ID()
		v.Action = h.itemPath(fs.ID()) + "/edit"
	}

	for _, f := range h.def.Fields {
		fv := fieldView{
			Name:     f.Name,
			Label:    f.Label,
			Kind:     string(f.Kind),
			Required: f.Required,
			Value:    valueString(values[f.Name]),
		}
		if fs.Touched(f.Name) {
			fv.Error = errs[f.Name]
		}

		opts := f.Options
		if f.Reference != "" {
			opts = fs.Options(f.Reference)
		}
		for _, o := range opts {
			ov := optionView{Value: valueString(o.Value), Label: o.Label}
			ov.Selected = ov.Value == fv.Value
			fv.Options = append(fv.Options, ov)
		}
		v.Fields = append(v.Fields, fv)
	}
	return v
}

// render executes page inside the console layout. rec may be nil.
func (c *Console) render(w http.ResponseWriter, r *http.Request, status int, page, title, active string, rec *screen.Recorder, body any) {
	data := layoutData{
		Title:  title,
		Menu:   c.menu,
		Active: active,
		Body:   body,
	}
	if rec != nil {
		data.Notifications = rec.Notifications()
		data.Redirect = redirectOf(rec)
	}

	var buf bytes.Buffer
	if err := pages[page].ExecuteTemplate(&buf, "layout", data); err != nil {
		logger.FromContext(r.Context()).Error().Err(err).Str("page", page).Msg("Failed to render page")
		response.InternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}
