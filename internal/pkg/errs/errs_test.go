package errs_test

import (
	"errors"
	"testing"

	"wms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.True(t, errors.Is(err, errs.ErrObjectNotFound))
	})
}

func TestValueErrors(t *testing.T) {
	t.Run("required", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("customerId")
		assert.Equal(t, "value is required: customerId", err.Error())
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("invalid with cause", func(t *testing.T) {
		cause := errors.New("-2 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("quantity", cause)
		assert.Equal(t, "value is invalid: quantity (cause: -2 is not greater than 0)", err.Error())
		assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
	})

	t.Run("sanitizes newlines", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("sku\nwith newline")
		assert.NotContains(t, err.Error(), "\n")
		assert.Contains(t, err.Error(), "sku with newline")
	})
}

func TestInvalidTransitionError(t *testing.T) {
	err := errs.NewInvalidTransitionError("CONFERIDO", "DESPACHAR")

	assert.Equal(t, "CONFERIDO", err.FromStatus)
	assert.Equal(t, "DESPACHAR", err.EventType)
	assert.Equal(t, "invalid transition: no transition from CONFERIDO on DESPACHAR", err.Error())
	assert.True(t, errors.Is(err, errs.ErrInvalidTransition))

	var target *errs.InvalidTransitionError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "CONFERIDO", target.FromStatus)
}

func TestFinalStateViolationError(t *testing.T) {
	err := errs.NewFinalStateViolationError("o-1", "DESPACHADO")

	assert.Equal(t, "final state violation: order o-1 is in final status DESPACHADO", err.Error())
	assert.True(t, errors.Is(err, errs.ErrFinalStateViolation))
}

func TestIdempotencyConflictError(t *testing.T) {
	err := errs.NewIdempotencyConflictError("ORDER_CREATE", "key-1")

	assert.Equal(t,
		"idempotency conflict: key key-1 already used in scope ORDER_CREATE with a different payload",
		err.Error())
	assert.True(t, errors.Is(err, errs.ErrIdempotencyConflict))
}

func TestConcurrencyConflictError(t *testing.T) {
	err := errs.NewConcurrencyConflictError("o-1", 3)

	assert.Equal(t, 3, err.Attempts)
	assert.Contains(t, err.Error(), "still contended after 3 attempts")
	assert.True(t, errors.Is(err, errs.ErrConcurrencyConflict))
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("internal secret mismatch")

	assert.Equal(t, "forbidden: internal secret mismatch", err.Error())
	assert.True(t, errors.Is(err, errs.ErrForbidden))
}
