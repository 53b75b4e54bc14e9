// Package apperr defines the error kinds shared by every domain package.
// Domain packages wrap these kinds in their own sentinels so callers can
// match either the specific error or its kind with errors.Is.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrMissingReference = errors.New("missing reference")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrUnauthorized     = errors.New("unauthorized")
)

// ValidationError reports a bad or missing input field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Invalid builds a ValidationError for field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// New returns an error of the given kind whose message is msg alone, for
// codes clients match on verbatim.
func New(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}
