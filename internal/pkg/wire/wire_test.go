package wire

import (
	"encoding/json"
	"testing"
)

func TestRefAcceptsObjectOrBareID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		id    int64
		label string
	}{
		{"named object", `{"id":3,"name":"Cusco"}`, 3, "Cusco"},
		{"person", `{"id":4,"first_name":"Ana","last_name":"Quispe"}`, 4, "Ana Quispe"},
		{"itinerary day", `{"id":5,"day":2}`, 5, "Día 2"},
		{"bare id", `9`, 9, "#9"},
		{"null", `null`, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Ref
			if err := json.Unmarshal([]byte(tt.input), &r); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r.ID != tt.id || r.Label() != tt.label {
				t.Fatalf("expected id=%d label=%q, got %+v (%q)", tt.id, tt.label, r, r.Label())
			}
		})
	}
}

func TestRefRejectsFractionalID(t *testing.T) {
	var r Ref
	if err := json.Unmarshal([]byte(`1.5`), &r); err == nil {
		t.Fatal("expected error for fractional id")
	}
}

func TestAmountAcceptsNumberOrString(t *testing.T) {
	var payload struct {
		Price Amount `json:"base_price"`
		Extra Amount `json:"extra_cost"`
	}
	if err := json.Unmarshal([]byte(`{"base_price":"120.50","extra_cost":15}`), &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Price != 120.5 || payload.Extra != 15 {
		t.Fatalf("unexpected amounts %+v", payload)
	}
	if payload.Price.String() != "120.50" {
		t.Fatalf("unexpected format %q", payload.Price.String())
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != `{"base_price":120.5,"extra_cost":15}` {
		t.Fatalf("expected numbers on the wire, got %s", out)
	}
}
