package order

import (
	"fmt"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/errs"
)

// ActorKind classifies who posted an event.
type ActorKind string

const (
	// ActorKindUser marks events posted by human operators.
	ActorKindUser ActorKind = "USER"
	// ActorKindSystem marks events posted by internal automation.
	ActorKindSystem ActorKind = "SYSTEM"
	// ActorKindIntegration marks events posted by external systems.
	ActorKindIntegration ActorKind = "INTEGRATION"
)

// Validate rejects actor kinds outside the fixed set.
func (k ActorKind) Validate() error {
	switch k {
	case ActorKindUser, ActorKindSystem, ActorKindIntegration:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("actor kind",
			fmt.Errorf("%q is not a valid actor kind", string(k)))
	}
}

// Actor identifies the originator of an event.
type Actor struct {
	kind ActorKind
	id   string
}

// NewActor creates a validated actor reference.
func NewActor(kind ActorKind, id string) (Actor, error) {
	if err := kind.Validate(); err != nil {
		return Actor{}, err
	}
	if id == "" {
		return Actor{}, errs.NewValueIsRequiredError("actor id")
	}
	return Actor{kind: kind, id: id}, nil
}

// Kind returns the actor classification.
func (a Actor) Kind() ActorKind {
	return a.kind
}

// ID returns the actor identifier (user id, service name, integration name).
func (a Actor) ID() string {
	return a.id
}

// Event is one append-only fact in an order's audit trail. Events are never
// mutated or deleted; the final toStatus of the history always equals the
// order's current status.
type Event struct {
	id             kernel.UUID
	orderID        kernel.UUID
	eventType      string
	fromStatus     string
	toStatus       string
	occurredAt     time.Time
	actor          Actor
	idempotencyKey string
	correlationID  string
	requestID      string
}

// RestoreEvent rebuilds an event from persistence.
func RestoreEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	eventType, fromStatus, toStatus string,
	occurredAt time.Time,
	actor Actor,
	idempotencyKey, correlationID, requestID string,
) (*Event, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	if eventType == "" {
		return nil, errs.NewValueIsRequiredError("event type")
	}
	return &Event{
		id:             id,
		orderID:        orderID,
		eventType:      eventType,
		fromStatus:     fromStatus,
		toStatus:       toStatus,
		occurredAt:     occurredAt,
		actor:          actor,
		idempotencyKey: idempotencyKey,
		correlationID:  correlationID,
		requestID:      requestID,
	}, nil
}

// ID returns the event's unique identifier.
func (e *Event) ID() kernel.UUID { return e.id }

// OrderID returns the owning order's identifier.
func (e *Event) OrderID() kernel.UUID { return e.orderID }

// Type returns the event type that triggered the transition.
func (e *Event) Type() string { return e.eventType }

// FromStatus returns the order status before the transition.
func (e *Event) FromStatus() string { return e.fromStatus }

// ToStatus returns the order status after the transition.
func (e *Event) ToStatus() string { return e.toStatus }

// OccurredAt returns when the event took effect.
func (e *Event) OccurredAt() time.Time { return e.occurredAt }

// Actor returns who posted the event.
func (e *Event) Actor() Actor { return e.actor }

// IdempotencyKey returns the caller-supplied de-duplication token, if any.
func (e *Event) IdempotencyKey() string { return e.idempotencyKey }

// CorrelationID returns the request correlation identifier, if any.
func (e *Event) CorrelationID() string { return e.correlationID }

// RequestID returns the per-request identifier, if any.
func (e *Event) RequestID() string { return e.requestID }
