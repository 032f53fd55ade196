package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Header and context keys for request tracing.
const (
	HeaderCorrelationID = "X-Correlation-Id"
	HeaderRequestID     = "X-Request-Id"

	contextKeyCorrelationID = "correlationId"
	contextKeyRequestID     = "requestId"
)

// TracingMiddleware propagates the caller's correlation id, or mints one,
// and stamps every request with a fresh request id. Both are echoed back as
// response headers so clients can reference them in support requests.
func TracingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			correlationID := ctx.Request().Header.Get(HeaderCorrelationID)
			if correlationID == "" {
				correlationID = uuid.NewString()
			}
			requestID := uuid.NewString()

			ctx.Set(contextKeyCorrelationID, correlationID)
			ctx.Set(contextKeyRequestID, requestID)
			ctx.Response().Header().Set(HeaderCorrelationID, correlationID)
			ctx.Response().Header().Set(HeaderRequestID, requestID)

			return next(ctx)
		}
	}
}

func correlationID(ctx echo.Context) string {
	if v, ok := ctx.Get(contextKeyCorrelationID).(string); ok {
		return v
	}
	return ""
}

func requestID(ctx echo.Context) string {
	if v, ok := ctx.Get(contextKeyRequestID).(string); ok {
		return v
	}
	return ""
}
