// Package errs provides standardized error types for the WMS core.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// Each error type follows the same shape:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type carrying the error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is/errors.As support
//
// The lifecycle errors (InvalidTransitionError, FinalStateViolationError,
// IdempotencyConflictError, ConcurrencyConflictError, ForbiddenError) map
// one-to-one onto the stable machine-readable codes surfaced by the HTTP
// adapter, so business-rule violations stay diagnosable without log access.
package errs
