package settings

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents a single failed validation.
type ErrorResponse struct {
	FailedField string
	Tag         string
	Value       interface{}
}

var validate = validator.New()

// validateForm runs struct validation and returns one entry per failed field.
func validateForm(data interface{}) []ErrorResponse {
	var validationErrors []ErrorResponse

	errs := validate.Struct(data)
	if errs != nil {
		for _, err := range errs.(validator.ValidationErrors) { //nolint:errorlint,errcheck // ok here
			validationErrors = append(validationErrors, ErrorResponse{
				FailedField: err.Field(),
				Tag:         err.Tag(),
				Value:       err.Value(),
			})
		}
	}

	return validationErrors
}

// validationMessage renders failed validations as one user-facing line.
func validationMessage(errs []ErrorResponse) string {
	parts := make([]string, 0, len(errs))

	for _, e := range errs {
		parts = append(parts, fmt.Sprintf("%s is not a valid %s", e.FailedField, e.Tag))
	}

	return strings.Join(parts, ", ")
}
