package schema

import (
	"fmt"

	"github.com/aretw0/tendril/pkg/domain"
)

// FieldError represents a single structural failure in a document.
type FieldError struct {
	Field  string // Field name, e.g. "start" or "transitions[3]"
	Reason string // Human-readable reason for failure
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}

// MalformedError aggregates every structural failure found in one document.
// It matches domain.ErrMalformedDefinition under errors.Is, which is how
// loaders and surfaces classify it as a definition problem rather than an
// engine problem.
type MalformedError struct {
	Errors []error
}

func (e *MalformedError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("malformed machine definition: %s", e.Errors[0].Error())
	}
	msg := fmt.Sprintf("malformed machine definition: %d problems:", len(e.Errors))
	for _, err := range e.Errors {
		msg += "\n  - " + err.Error()
	}
	return msg
}

func (e *MalformedError) Is(target error) bool {
	return target == domain.ErrMalformedDefinition
}

// StructuralErrors returns the individual failures if err is a
// *MalformedError, nil otherwise.
func StructuralErrors(err error) []error {
	if m, ok := err.(*MalformedError); ok {
		return m.Errors
	}
	return nil
}
