package xerrors

import (
	"errors"
	"fmt"
)

// ErrValidation is the sentinel every ValidationError matches via errors.Is.
var ErrValidation = errors.New("invalid submission")

// ValidationError reports the first missing or malformed submission field.
// Message is safe to surface to the submitting client.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// MissingField builds the generic missing-field error the client contract
// expects, tagged with the specific field for logging.
func MissingField(field string) *ValidationError {
	return &ValidationError{Field: field, Message: "Missing required fields"}
}

// InvalidField builds a field-specific validation error.
func InvalidField(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
