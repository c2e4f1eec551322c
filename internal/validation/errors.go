package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single validation failure of one payload field in
// the client-facing format. The full list of field errors travels to the
// client under the error envelope's extraData key.
type FieldError struct {
	// Field is the lower-cased name of the offending field.
	Field string `json:"field"`

	// Message is the human-readable rule description, e.g. "is required".
	Message string `json:"message"`
}

// Extract converts an error returned by [Struct] into the flat list of field
// errors shown to clients, preserving the validator's reporting order.
//
// A nil err yields a nil slice. An error that is not a
// [validator.ValidationErrors] value produces a single generic entry so that
// no failure is ever silently dropped.
func Extract(err error) []FieldError {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   strings.ToLower(fieldErr.Field()),
			Message: messageForTag(fieldErr),
		})
	}

	return fieldErrors
}

// messageForTag renders a human-readable message for one failed rule.
// Tags without a dedicated wording fall back to naming the tag itself.
func messageForTag(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		// min means length for strings and value for numbers
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", err.Param())
		}
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		if err.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", err.Param())
		}
		return fmt.Sprintf("must not exceed %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	default:
		if err.Param() != "" {
			return fmt.Sprintf("failed on %s:%s", err.Tag(), err.Param())
		}
		return fmt.Sprintf("failed on %s", err.Tag())
	}
}
