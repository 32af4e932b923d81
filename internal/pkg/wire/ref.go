package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Ref is an embedded relation of a read shape. The backend expands relations to
// an object carrying the id and its label fields; a bare id is accepted as well.
type Ref struct {
	ID        int64  `json:"id"`
	Name      string `json:"name,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Day       int    `json:"day,omitempty"`
}

// Identifier returns the relation id.
func (r Ref) Identifier() int64 {
	return r.ID
}

// Label is the human readable name of the relation.
func (r Ref) Label() string {
	switch {
	case r.Name != "":
		return r.Name
	case r.FirstName != "" || r.LastName != "":
		return strings.TrimSpace(r.FirstName + " " + r.LastName)
	case r.Day > 0:
		return "Día " + strconv.Itoa(r.Day)
	case r.ID > 0:
		return "#" + strconv.FormatInt(r.ID, 10)
	}
	return ""
}

func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = Ref{}
		return nil
	}

	if data[0] != '{' {
		var id json.Number
		if err := json.Unmarshal(data, &id); err != nil {
			return fmt.Errorf("relation: %w", err)
		}
		n, err := id.Int64()
		if err != nil {
			return fmt.Errorf("relation id %q: %w", id, err)
		}
		*r = Ref{ID: n}
		return nil
	}

	type plain Ref
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = Ref(p)
	return nil
}
