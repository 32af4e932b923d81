package validator

import "testing"

type sampleForm struct {
	Name      string   `json:"name" validate:"required,min=2"`
	Email     string   `json:"email" validate:"required,email"`
	Cost      *float64 `json:"extra_cost" validate:"required,gte=0"`
	Day       int      `json:"day" validate:"required,min=1"`
	Status    string   `json:"status" validate:"required,booking_status"`
	Date      string   `json:"booking_date" validate:"required,calendar_date"`
	Reference any      `json:"plan" validate:"required"`
}

func ptr[T any](v T) *T { return &v }

func TestValidateMessages(t *testing.T) {
	errs := Validate(&sampleForm{
		Name:   "A",
		Email:  "not-an-email",
		Cost:   ptr(-1.0),
		Status: "archived",
		Date:   "01/03/2024",
	})

	want := map[string]string{
		"name":         "Debe tener al menos 2 caracteres",
		"email":        "Ingrese un correo electrónico válido",
		"extra_cost":   "El valor mínimo es 0",
		"day":          "Este campo es requerido",
		"status":       "Estado inválido. Debe ser: pending, paid o canceled",
		"booking_date": "Ingrese una fecha válida",
		"plan":         "Este campo es requerido",
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Fatalf("field %s: expected %q, got %q (all: %v)", field, msg, errs[field], errs)
		}
	}
}

func TestValidatePasses(t *testing.T) {
	errs := Validate(&sampleForm{
		Name:      "Machu Picchu",
		Email:     "ana@example.com",
		Cost:      ptr(0.0),
		Day:       1,
		Status:    "paid",
		Date:      "2024-03-01",
		Reference: float64(3),
	})
	if errs != nil {
		t.Fatalf("expected no errors, got %v", errs)
	}
}
