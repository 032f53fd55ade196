package http

import (
	"errors"
	"net/http"

	"wms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Stable machine-readable error codes returned in ErrorResponse.Code.
const (
	codeValidationError     = "VALIDATION_ERROR"
	codeNotFound            = "NOT_FOUND"
	codeInvalidTransition   = "INVALID_TRANSITION"
	codeFinalStateViolation = "FINAL_STATE_VIOLATION"
	codeIdempotencyConflict = "IDEMPOTENCY_CONFLICT"
	codeConflict            = "CONFLICT"
	codeForbidden           = "FORBIDDEN"
	codeInternalError       = "INTERNAL_ERROR"
)

// writeError maps a use-case error onto its HTTP status and stable code.
// Every transition rejection keeps its diagnostic detail in the body so
// clients do not need server logs to explain a 409.
func writeError(ctx echo.Context, err error) error {
	var invalidTransition *errs.InvalidTransitionError
	if errors.As(err, &invalidTransition) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    codeInvalidTransition,
			Message: "no transition from the current status on this event type",
			Details: map[string]any{
				"from":      invalidTransition.FromStatus,
				"eventType": invalidTransition.EventType,
			},
		})
	}

	var finalState *errs.FinalStateViolationError
	if errors.As(err, &finalState) {
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    codeFinalStateViolation,
			Message: "order already reached a terminal status",
			Details: map[string]any{"status": finalState.Status},
		})
	}

	switch {
	case errors.Is(err, errs.ErrIdempotencyConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    codeIdempotencyConflict,
			Message: "idempotency key already used with a different payload",
		})
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    codeConflict,
			Message: "order was modified concurrently, retry the request",
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    codeNotFound,
			Message: "object not found",
		})
	case errors.Is(err, errs.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    codeForbidden,
			Message: "forbidden",
		})
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    codeValidationError,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    codeInternalError,
		Message: "internal error",
	})
}
