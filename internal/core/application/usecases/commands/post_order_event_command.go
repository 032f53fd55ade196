package commands

import (
	"errors"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"
	"wms/internal/pkg/errs"
	"wms/internal/pkg/guard"
)

var (
	ErrPostOrderEventCommandIsNotConstructed = errors.New(
		"PostOrderEventCommand must be created via NewPostOrderEventCommand constructor",
	)
)

// PostOrderEventCommand represents a request to apply one lifecycle event to
// an order. OccurredAt is optional; when zero the handler stamps the event
// with the processing time.
type PostOrderEventCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	eventType      string
	actor          order.Actor
	occurredAt     time.Time
	idempotencyKey string
	correlationID  string
	requestID      string

	guard guard.ConstructorGuard
}

// NewPostOrderEventCommand creates a command to post a lifecycle event.
func NewPostOrderEventCommand(
	orderID kernel.UUID,
	eventType string,
	actor order.Actor,
	occurredAt time.Time,
	idempotencyKey string,
	correlationID string,
	requestID string,
) (PostOrderEventCommand, error) {
	cmd := PostOrderEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return PostOrderEventCommand{}, err
	}
	if eventType == "" {
		return PostOrderEventCommand{}, errs.NewValueIsRequiredError("event type")
	}

	cmd.orderID = orderID
	cmd.eventType = eventType
	cmd.actor = actor
	cmd.occurredAt = occurredAt
	cmd.idempotencyKey = idempotencyKey
	cmd.correlationID = correlationID
	cmd.requestID = requestID

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PostOrderEventCommand) Validate() error {
	return c.guard.Validate(ErrPostOrderEventCommandIsNotConstructed)
}

// OrderID returns the target order identifier.
func (c PostOrderEventCommand) OrderID() kernel.UUID {
	return c.orderID
}

// EventType returns the lifecycle event type to apply.
func (c PostOrderEventCommand) EventType() string {
	return c.eventType
}

// Actor returns who is posting the event.
func (c PostOrderEventCommand) Actor() order.Actor {
	return c.actor
}

// OccurredAt returns the caller-supplied event time, zero when absent.
func (c PostOrderEventCommand) OccurredAt() time.Time {
	return c.occurredAt
}

// IdempotencyKey returns the optional de-duplication token.
func (c PostOrderEventCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

// CorrelationID returns the request correlation identifier.
func (c PostOrderEventCommand) CorrelationID() string {
	return c.correlationID
}

// RequestID returns the per-request identifier.
func (c PostOrderEventCommand) RequestID() string {
	return c.requestID
}
