package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition is the sentinel for events that have no transition
	// defined from the order's current status.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrFinalStateViolation is the sentinel for events posted against an
	// order that already reached a terminal status.
	ErrFinalStateViolation = errors.New("final state violation")

	// ErrConcurrencyConflict is the sentinel for optimistic-lock failures
	// that survived the bounded retry loop.
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

// InvalidTransitionError carries the attempted from-state and event type so
// callers can diagnose the rejection without consulting logs.
type InvalidTransitionError struct {
	FromStatus string
	EventType  string
}

// NewInvalidTransitionError creates an InvalidTransitionError for the attempted pair.
func NewInvalidTransitionError(fromStatus, eventType string) *InvalidTransitionError {
	return &InvalidTransitionError{FromStatus: fromStatus, EventType: eventType}
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: no transition from %s on %s",
		ErrInvalidTransition, sanitize(e.FromStatus), sanitize(e.EventType))
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// FinalStateViolationError indicates an event was posted against a terminal order.
type FinalStateViolationError struct {
	OrderID string
	Status  string
}

// NewFinalStateViolationError creates a FinalStateViolationError for the order and its terminal status.
func NewFinalStateViolationError(orderID, status string) *FinalStateViolationError {
	return &FinalStateViolationError{OrderID: orderID, Status: status}
}

func (e *FinalStateViolationError) Error() string {
	return fmt.Sprintf("%s: order %s is in final status %s",
		ErrFinalStateViolation, sanitize(e.OrderID), sanitize(e.Status))
}

func (e *FinalStateViolationError) Unwrap() error {
	return ErrFinalStateViolation
}

// ConcurrencyConflictError indicates that concurrent writers kept invalidating
// the optimistic version check until the retry budget ran out. The write was
// not applied; the caller may safely retry.
type ConcurrencyConflictError struct {
	OrderID  string
	Attempts int
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError after the given number of attempts.
func NewConcurrencyConflictError(orderID string, attempts int) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{OrderID: orderID, Attempts: attempts}
}

func (e *ConcurrencyConflictError) Error() string {
	return fmt.Sprintf("%s: order %s still contended after %d attempts",
		ErrConcurrencyConflict, sanitize(e.OrderID), e.Attempts)
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}
