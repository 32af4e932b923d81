package destination

import (
	"encoding/json"
	"testing"
	"time"
)

func TestReadDropsSummaries(t *testing.T) {
	payload := `{"id":2,"name":"Cusco","country":"Perú","city":"Cusco",
		"accommodations":[{"id":4,"name":"Hotel Sol","type":"hotel"}],
		"transports":[{"id":3,"type":"bus","company":"Cruz del Sur"}]}`

	var r Read
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Accommodations) != 1 || len(r.Transports) != 1 || r.Transports[0].Company != "Cruz del Sur" {
		t.Fatalf("unexpected destination %+v", r)
	}

	body, err := json.Marshal(r.ToWrite())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"name":"Cusco","country":"Perú","city":"Cusco"}`
	if string(body) != want {
		t.Fatalf("expected %s, got %s", want, body)
	}
}

func TestPlace(t *testing.T) {
	tests := []struct {
		read Read
		want string
	}{
		{Read{City: "Cusco", Country: "Perú"}, "Cusco, Perú"},
		{Read{City: "Cusco"}, "Cusco"},
		{Read{Country: "Perú"}, "Perú"},
		{Read{}, ""},
	}

	for _, tt := range tests {
		if got := tt.read.Place(); got != tt.want {
			t.Fatalf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestFormToWrite(t *testing.T) {
	tests := []struct {
		name string
		form Form
		want string
	}{
		{name: "trimmed", form: Form{Name: " Arequipa ", Country: "Perú ", City: " Arequipa"}, want: `{"name":"Arequipa","country":"Perú","city":"Arequipa"}`},
		{name: "optional parts left out", form: Form{Name: "Titicaca"}, want: `{"name":"Titicaca"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := tt.form.ToWrite(time.UTC)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			body, err := json.Marshal(w)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(body) != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, body)
			}
		})
	}
}
