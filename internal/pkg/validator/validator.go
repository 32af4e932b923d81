package validator

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Booking status
	validate.RegisterValidation("booking_status", func(fl validator.FieldLevel) bool {
		status := fl.Field().String()
		for _, s := range []string{"pending", "paid", "canceled"} {
			if status == s {
				return true
			}
		}
		return false
	})

	// Calendar date: YYYY-MM-DD or an RFC 3339 timestamp picked by a date input
	validate.RegisterValidation("calendar_date", func(fl validator.FieldLevel) bool {
		s := strings.TrimSpace(fl.Field().String())
		if _, err := time.Parse("2006-01-02", s); err == nil {
			return true
		}
		_, err := time.Parse(time.RFC3339, s)
		return err == nil
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	errors := make(map[string]string)
	for _, err := range validationErrors {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "Este campo es requerido"
		case "email":
			errors[field] = "Ingrese un correo electrónico válido"
		case "min":
			if isNumeric(err.Kind()) {
				errors[field] = "El valor mínimo es " + err.Param()
			} else {
				errors[field] = "Debe tener al menos " + err.Param() + " caracteres"
			}
		case "max":
			errors[field] = "Debe tener como máximo " + err.Param() + " caracteres"
		case "gte":
			errors[field] = "El valor mínimo es " + err.Param()
		case "booking_status":
			errors[field] = "Estado inválido. Debe ser: pending, paid o canceled"
		case "calendar_date":
			errors[field] = "Ingrese una fecha válida"
		default:
			errors[field] = "Valor inválido"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
