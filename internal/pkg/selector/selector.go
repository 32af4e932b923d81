package selector

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strings"
)

// FieldError reports a selector or date value that cannot be submitted.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Identifiable is implemented by reference structs bound to a selector.
type Identifiable interface {
	Identifier() int64
}

// ResolveID extracts the numeric identifier held by a selector. The value may be
// the raw id or the expanded object the selector was bound to; anything that does
// not resolve to a finite, integral number is rejected.
func ResolveID(field string, v any) (int64, error) {
	if isNil(v) {
		return 0, &FieldError{Field: field, Message: "Seleccione un valor"}
	}

	switch val := v.(type) {
	case Identifiable:
		return val.Identifier(), nil
	case map[string]any:
		raw, ok := val["id"]
		if !ok || raw == nil {
			return 0, &FieldError{Field: field, Message: "La selección no tiene identificador"}
		}
		id, ok := numericID(raw)
		if !ok {
			return 0, &FieldError{Field: field, Message: "Identificador inválido"}
		}
		return id, nil
	}

	if id, ok := numericID(v); ok {
		return id, nil
	}

	if id, ok := structID(v); ok {
		return id, nil
	}

	return 0, &FieldError{Field: field, Message: "Valor de selección inválido"}
}

// isNil also catches typed nil pointers, which would otherwise reach a value
// receiver Identifier and panic.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func numericID(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return uintID(uint64(n))
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return uintID(n)
	case float32:
		return floatID(float64(n))
	case float64:
		return floatID(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i, true
		}
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return floatID(f)
	}
	return 0, false
}

func uintID(n uint64) (int64, bool) {
	if n > math.MaxInt64 {
		return 0, false
	}
	return int64(n), true
}

func floatID(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, false
	}
	return int64(f), true
}

// structID reads an exported ID field from a struct or pointer to struct.
func structID(v any) (int64, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return 0, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return 0, false
	}

	for i := 0; i < rv.NumField(); i++ {
		f := rv.Type().Field(i)
		if !f.IsExported() {
			continue
		}
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if f.Name != "ID" && name != "id" {
			continue
		}
		return numericID(rv.Field(i).Interface())
	}
	return 0, false
}
