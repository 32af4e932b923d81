package selector

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates.
const DateLayout = "2006-01-02"

// FormatDate serializes t using its own calendar components. The value is never
// converted to UTC, so a date picked near midnight keeps its day.
func FormatDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// ParseDate reads a calendar value coming from a form. Timestamps are moved into
// loc before their date is taken, the way a date picker in that zone shows them.
func ParseDate(field string, v any, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	switch val := v.(type) {
	case time.Time:
		if val.IsZero() {
			return time.Time{}, &FieldError{Field: field, Message: "La fecha es requerida"}
		}
		return val.In(loc), nil
	case *time.Time:
		if val == nil || val.IsZero() {
			return time.Time{}, &FieldError{Field: field, Message: "La fecha es requerida"}
		}
		return val.In(loc), nil
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return time.Time{}, &FieldError{Field: field, Message: "La fecha es requerida"}
		}
		if t, err := time.ParseInLocation(DateLayout, s, loc); err == nil {
			return t, nil
		}
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.In(loc), nil
		}
		return time.Time{}, &FieldError{Field: field, Message: "Fecha inválida"}
	case nil:
		return time.Time{}, &FieldError{Field: field, Message: "La fecha es requerida"}
	}

	return time.Time{}, &FieldError{Field: field, Message: "Fecha inválida"}
}

// NormalizeDate parses a form value and returns its YYYY-MM-DD form.
func NormalizeDate(field string, v any, loc *time.Location) (string, error) {
	t, err := ParseDate(field, v, loc)
	if err != nil {
		return "", err
	}
	return FormatDate(t), nil
}
