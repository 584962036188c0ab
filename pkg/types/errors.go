package types

import (
	"errors"
	"strings"
)

// Store operation errors.
var (
	ErrNotFound    = errors.New("part not found")
	ErrInvalidID   = errors.New("invalid part ID")
	ErrDuplicateID = errors.New("duplicate part ID")
	ErrValidation  = errors.New("validation failed")
)

// Draft and modal errors.
var (
	ErrUnknownField      = errors.New("unknown draft field")
	ErrInvalidTransition = errors.New("invalid modal transition")
)

// Validation problem tags reported in FieldProblem.Tag.
const (
	ProblemRequired = "required"
	ProblemFormat   = "format"
)

// FieldProblem names one draft field that failed submit-time validation.
type FieldProblem struct {
	Field string // Draft field name, e.g. "partName".
	Tag   string // ProblemRequired or ProblemFormat.
}

// ValidationError reports every draft field that failed validation.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Problems []FieldProblem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.Field+" "+p.Tag)
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// Fields returns the names of the offending fields in report order.
func (e *ValidationError) Fields() []string {
	out := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		out = append(out, p.Field)
	}
	return out
}

// HasMissing reports whether any required field was left empty.
func (e *ValidationError) HasMissing() bool {
	for _, p := range e.Problems {
		if p.Tag == ProblemRequired {
			return true
		}
	}
	return false
}
