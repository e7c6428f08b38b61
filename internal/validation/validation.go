// Package validation checks incoming DTOs and turns every violated rule into
// a human-readable message. All rules are evaluated; nothing short-circuits.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"minimal_api/internal/model"

	"github.com/go-playground/validator/v10"
)

var (
	validate = newValidator()

	// Keyed by "<struct field>.<tag>"
	messages = map[string]string{
		"Name.notblank":     "name must not be empty",
		"Name.max":          "name must be at most 150 characters",
		"Brand.notblank":    "brand must not be empty",
		"Brand.max":         "brand must be at most 100 characters",
		"Year.gte":          fmt.Sprintf("vehicle too old, only years ≥ %d accepted", model.MinVehicleYear),
		"Email.notblank":    "email must not be empty",
		"Email.max":         "email must be at most 255 characters",
		"Password.notblank": "password must not be empty",
		"Password.max":      "password must be at most 255 characters",
		"Role.required":     "role must not be empty",
	}
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// mustRegister panics when a custom tag cannot be registered
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

// Vehicle returns the list of rule violations for a vehicle payload.
// An empty result means the payload is valid.
func Vehicle(dto model.VehicleDTO) []string {
	return check(dto)
}

// Administrator returns the list of rule violations for an administrator
// registration payload. An unknown profile is not a violation.
func Administrator(dto model.AdministratorDTO) []string {
	return check(dto)
}

func check(dto any) []string {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if msg, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
			msgs = append(msgs, msg)
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s is invalid", strings.ToLower(fe.StructField())))
	}
	return msgs
}
