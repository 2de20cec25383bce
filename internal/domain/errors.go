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

	ErrUnknownWord         = errors.New("unknown word")
	ErrUndefinedSimilarity = errors.New("undefined similarity")
	ErrInvalidMeasure      = errors.New("invalid similarity measure")
	ErrInsufficientData    = errors.New("insufficient data")
	ErrInvalidInput        = errors.New("invalid input")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
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

func (e *ValidationError) Unwrap() error { return ErrValidation }

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

// SimilarityError reports a word-similarity failure together with the
// inputs that triggered it.
type SimilarityError struct {
	WordA   string
	WordB   string
	Measure Measure
	// Unknown lists the input words that have no senses, if any.
	Unknown []string
	Err     error
}

func (e *SimilarityError) Error() string {
	msg := fmt.Sprintf("similarity %s(%q, %q): %v", e.Measure, e.WordA, e.WordB, e.Err)
	if len(e.Unknown) > 0 {
		msg += fmt.Sprintf(" (no noun senses for %q)", e.Unknown)
	}
	return msg
}

// Unwrap exposes the cause. A word without senses makes the similarity
// undefined as well, so both sentinels match in that case.
func (e *SimilarityError) Unwrap() []error {
	if errors.Is(e.Err, ErrUnknownWord) {
		return []error{e.Err, ErrUndefinedSimilarity}
	}
	return []error{e.Err}
}
