package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrConflict      = errors.New("conflict")

	// ErrEmptyLocation is returned for a location tuple with no non-empty
	// segment. Such a tuple has no level and cannot be placed in a hierarchy.
	ErrEmptyLocation = errors.New("empty location")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

// Unwrap exposes ErrValidation and every field-level cause, so both
// errors.Is(err, ErrValidation) and errors.Is(err, ErrEmptyLocation) match.
func (e *ValidationError) Unwrap() []error {
	errs := []error{ErrValidation}
	for _, fe := range e.Errors {
		if fe.Err != nil {
			errs = append(errs, fe.Err)
		}
	}
	return errs
}

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// NewEmptyLocationError reports an all-empty location tuple on the given field.
func NewEmptyLocationError(field string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: "at least one segment required", Err: ErrEmptyLocation}},
	}
}
