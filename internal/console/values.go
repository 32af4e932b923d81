package console

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/turismo/backoffice-console/internal/screen"
)

// formValues coerces a posted HTML form into the values a form screen binds.
// Blank inputs are left out so required checks see them as missing, and text
// that does not parse as its field kind is kept as is for validation to
// reject.
func formValues(fields []screen.Field, form url.Values) map[string]any {
	values := make(map[string]any, len(fields))
	for _, f := range fields {
		raw := strings.TrimSpace(form.Get(f.Name))
		if raw == "" {
			continue
		}

		switch {
		case f.Kind == screen.KindNumber:
			if n, err := strconv.ParseFloat(raw, 64); err == nil {
				values[f.Name] = n
				continue
			}
		case f.Kind == screen.KindInteger, f.Kind == screen.KindSelect && f.Reference != "":
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				values[f.Name] = n
				continue
			}
		}
		values[f.Name] = raw
	}
	return values
}

// valueString renders a field value into an input.
func valueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case *float64:
		if t == nil {
			return ""
		}
		return strconv.FormatFloat(*t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case bool:
		return strconv.FormatBool(t)
	case map[string]any:
		if id, ok := t["id"]; ok {
			return valueString(id)
		}
		return ""
	default:
		return fmt.Sprint(t)
	}
}
