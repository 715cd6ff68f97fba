package errs

import (
	"errors"
)

var (
	// ErrNotFound is returned when a referenced entity is absent.
	ErrNotFound = errors.New("not found")
	// ErrInvalidOperation is returned when a business rule forbids the operation.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrConflict is returned when an entity is in the wrong state for the transition.
	ErrConflict = errors.New("conflict")
	// ErrConsistency marks a violated internal invariant. It is a defect, not a user error.
	ErrConsistency = errors.New("internal consistency fault")
)

type ValidationErrorResponse struct {
	Message string `json:"message"`
	Errors  struct {
		AdditionalProperties string `json:"additionalProperties"`
	} `json:"errors"`
}
