package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("measure", "required")

	if got := err.Error(); got != "validation: measure: required" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "word_a", Message: "required"},
		{Field: "word_b", Message: "required"},
	})

	if got := err.Error(); got != "validation: 2 errors" {
		t.Fatalf("unexpected Error(): %q", got)
	}
	if !errors.Is(err, ErrValidation) {
		t.Fatal("errors.Is(err, ErrValidation) = false")
	}
	if len(err.Errors) != 2 {
		t.Fatalf("expected 2 field errors, got %d", len(err.Errors))
	}
}

func TestSimilarityError_UnknownWordIsAlsoUndefined(t *testing.T) {
	t.Parallel()

	err := &SimilarityError{
		WordA:   "dog",
		WordB:   "qwzx",
		Measure: MeasurePath,
		Unknown: []string{"qwzx"},
		Err:     ErrUnknownWord,
	}

	if !errors.Is(err, ErrUnknownWord) {
		t.Error("errors.Is(err, ErrUnknownWord) = false")
	}
	if !errors.Is(err, ErrUndefinedSimilarity) {
		t.Error("errors.Is(err, ErrUndefinedSimilarity) = false")
	}
	msg := err.Error()
	for _, want := range []string{"path", `"dog"`, `"qwzx"`} {
		if !strings.Contains(msg, want) {
			t.Errorf("Error() = %q, want it to mention %s", msg, want)
		}
	}
}

func TestSimilarityError_Undefined(t *testing.T) {
	t.Parallel()

	err := &SimilarityError{WordA: "run", WordB: "blue", Measure: MeasureLin, Err: ErrUndefinedSimilarity}

	if errors.Is(err, ErrUnknownWord) {
		t.Error("undefined similarity must not match ErrUnknownWord")
	}
	if !errors.Is(err, ErrUndefinedSimilarity) {
		t.Error("errors.Is(err, ErrUndefinedSimilarity) = false")
	}

	var simErr *SimilarityError
	if !errors.As(err, &simErr) || simErr.Measure != MeasureLin {
		t.Errorf("errors.As did not recover the measure: %+v", simErr)
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	t.Parallel()

	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrValidation, ErrUnknownWord, ErrUndefinedSimilarity,
		ErrInvalidMeasure, ErrInsufficientData, ErrInvalidInput,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel errors %d and %d should not match", i, j)
			}
		}
	}
}
