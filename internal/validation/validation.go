// Package validation validates request DTOs at the transport boundary so
// services only ever see well-formed input.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperror "github.com/brigere/shield-api/internal/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Struct runs the validate tags on a DTO and converts the first violation
// into a client-safe ValidationError.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	ok := false
	if fieldErrs, ok = err.(validator.ValidationErrors); !ok || len(fieldErrs) == 0 {
		return apperror.NewValidationError("invalid input")
	}

	return apperror.NewValidationError(fieldMessage(fieldErrs[0]))
}

func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
