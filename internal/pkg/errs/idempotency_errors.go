package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrIdempotencyConflict is the sentinel for an idempotency key reused
	// with a different request payload.
	ErrIdempotencyConflict = errors.New("idempotency conflict")

	// ErrForbidden is the sentinel for callers failing the shared-secret check.
	ErrForbidden = errors.New("forbidden")
)

// IdempotencyConflictError indicates the same (scope, key) pair arrived with
// a payload whose canonical hash differs from the recorded one.
type IdempotencyConflictError struct {
	Scope string
	Key   string
}

// NewIdempotencyConflictError creates an IdempotencyConflictError for the scoped key.
func NewIdempotencyConflictError(scope, key string) *IdempotencyConflictError {
	return &IdempotencyConflictError{Scope: scope, Key: key}
}

func (e *IdempotencyConflictError) Error() string {
	return fmt.Sprintf("%s: key %s already used in scope %s with a different payload",
		ErrIdempotencyConflict, sanitize(e.Key), sanitize(e.Scope))
}

func (e *IdempotencyConflictError) Unwrap() error {
	return ErrIdempotencyConflict
}

// ForbiddenError indicates an internal caller presented a wrong shared secret.
type ForbiddenError struct {
	Reason string
}

// NewForbiddenError creates a ForbiddenError with a short reason.
func NewForbiddenError(reason string) *ForbiddenError {
	return &ForbiddenError{Reason: reason}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s", ErrForbidden, sanitize(e.Reason))
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
