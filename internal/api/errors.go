package api

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/tasktrack-api/internal/api/shared"
	"github.com/phrazzld/tasktrack-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients. Anything unrecognized - connectivity loss, constraint
// violations, driver failures - is a generic 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case store.IsNotFoundError(err):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	switch {
	case err == nil:
		return "An unexpected error occurred"
	case store.IsNotFoundError(err):
		return "Task not found"
	default:
		return "An unexpected error occurred"
	}
}

// fieldJSONNames maps request struct fields to their JSON names so
// validation details refer to the wire format the client sent.
var fieldJSONNames = map[string]string{
	"Title":       "title",
	"Description": "description",
	"Status":      "status",
	"Priority":    "priority",
}

// ValidationDetails converts a validator error into one FieldError per
// violation. Violations accumulate rather than short-circuiting, so the
// client sees every problem in a single response.
func ValidationDetails(err error) []shared.FieldError {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []shared.FieldError{{Field: "body", Message: "invalid request body"}}
	}

	details := make([]shared.FieldError, 0, len(validationErrs))
	for _, fe := range validationErrs {
		field := fieldJSONNames[fe.Field()]
		if field == "" {
			field = strings.ToLower(fe.Field())
		}
		details = append(details, shared.FieldError{
			Field:   field,
			Message: validationMessage(field, fe),
		})
	}
	return details
}

// validationMessage maps validation tags to user-friendly error messages.
func validationMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s",
			field, strings.Join(strings.Fields(fe.Param()), ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
