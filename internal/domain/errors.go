package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by storage, engine and transport. Callers match them
// with errors.Is; messages carry the wrapped context.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")

	// ErrNoApplicableFactor means no factor covers the category, country and
	// period, national fallback included. Nothing is persisted.
	ErrNoApplicableFactor = errors.New("no applicable emission factor")

	// ErrInconsistentState means storage reported a uniqueness conflict but
	// the conflicting calculation could not be read back.
	ErrInconsistentState = errors.New("inconsistent storage state")
)

// FieldError is one rejected input field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every rejected field of one input. It matches
// ErrValidation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString("validation: ")
	for i, fe := range e.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(fe.Field)
		b.WriteString(": ")
		b.WriteString(fe.Message)
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError rejects a single field.
func NewValidationError(field, message string) *ValidationError {
	return NewValidationErrors([]FieldError{{Field: field, Message: message}})
}

// NewValidationErrors rejects several fields at once.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
