package order

import (
	"errors"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/statemachine"
	"wms/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is the aggregate root tracking one fulfillment request through its
// lifecycle. It owns its item lines and its event history and is persisted
// as a single unit.
//
// Invariants:
//   - id never changes after creation
//   - status is always a state known to the injected state machine definition
//   - version increases by exactly 1 per accepted event
//   - events are append-only; the last event's toStatus equals status
//   - item lines mutate only through ReplaceItems (reconciliation path)
type Order struct {
	id              kernel.UUID
	externalOrderID string
	customerID      string
	status          string
	version         int
	items           []Item
	createdAt       time.Time
	updatedAt       time.Time
	sap             SapSnapshot

	events []*Event

	// baseVersion is the version observed at load time; repositories write
	// conditionally on it for optimistic concurrency.
	baseVersion int
	// newEvents holds events appended since load, pending persistence.
	newEvents []*Event
	// itemsDirty marks the item list as replaced since load.
	itemsDirty bool

	isConstructed bool
}

// NewOrder creates an order in the definition's initial state with version 0.
// CustomerID is required; items may be empty when the order is being staged
// by reconciliation ahead of its external lines.
func NewOrder(
	id kernel.UUID,
	customerID string,
	externalOrderID string,
	items []Item,
	def *statemachine.Definition,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if def == nil {
		return nil, errs.NewValueIsRequiredError("state machine definition")
	}

	return &Order{
		id:              id,
		externalOrderID: externalOrderID,
		customerID:      customerID,
		status:          def.InitialState(),
		version:         0,
		items:           append([]Item(nil), items...),
		createdAt:       createdAt,
		updatedAt:       createdAt,
		baseVersion:     0,
		isConstructed:   true,
	}, nil
}

// RestoreOrder rebuilds the aggregate from persistence. The supplied version
// becomes the optimistic-concurrency base for the next write.
func RestoreOrder(
	id kernel.UUID,
	externalOrderID string,
	customerID string,
	status string,
	version int,
	items []Item,
	createdAt time.Time,
	updatedAt time.Time,
	sap SapSnapshot,
	events []*Event,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if customerID == "" {
		return nil, errs.NewValueIsRequiredError("customerId")
	}
	if status == "" {
		return nil, errs.NewValueIsRequiredError("status")
	}
	if version < 0 {
		return nil, errs.NewValueIsInvalidError("version")
	}

	return &Order{
		id:              id,
		externalOrderID: externalOrderID,
		customerID:      customerID,
		status:          status,
		version:         version,
		items:           items,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		sap:             sap,
		events:          events,
		baseVersion:     version,
		isConstructed:   true,
	}, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the immutable order identifier.
func (o *Order) ID() kernel.UUID { return o.id }

// ExternalOrderID returns the best-effort correlation id to the external
// document, or the empty string when unset.
func (o *Order) ExternalOrderID() string { return o.externalOrderID }

// CustomerID returns the customer the order ships to.
func (o *Order) CustomerID() string { return o.customerID }

// Status returns the current lifecycle status.
func (o *Order) Status() string { return o.status }

// Version returns the current aggregate version.
func (o *Order) Version() int { return o.version }

// BaseVersion returns the version observed when the aggregate was loaded.
func (o *Order) BaseVersion() int { return o.baseVersion }

// Items returns a copy of the item lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns the timestamp of the last accepted mutation.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// SapSnapshot returns the external-document overlay.
func (o *Order) SapSnapshot() SapSnapshot { return o.sap }

// Events returns the loaded event history, ascending by occurredAt.
func (o *Order) Events() []*Event {
	return append([]*Event(nil), o.events...)
}

// NewEvents returns events appended since the aggregate was loaded.
// Repositories persist exactly these on Update.
func (o *Order) NewEvents() []*Event {
	return append([]*Event(nil), o.newEvents...)
}

// ItemsDirty reports whether the item list was replaced since load.
func (o *Order) ItemsDirty() bool { return o.itemsDirty }

// EventByIdempotencyKey returns the already-recorded event matching
// (eventType, idempotencyKey), or nil. This backs the hard at-most-once
// guarantee per (order, event type, key) triple.
func (o *Order) EventByIdempotencyKey(eventType, key string) *Event {
	if key == "" {
		return nil
	}
	for _, e := range o.events {
		if e.Type() == eventType && e.IdempotencyKey() == key {
			return e
		}
	}
	return nil
}

// ApplyEvent runs one state machine transition against the order. After the
// terminal check and the transition lookup, the event is appended and the
// status, updatedAt and version are advanced together.
//
// The caller is responsible for checking EventByIdempotencyKey first; an
// idempotent replay must return the stored event without calling ApplyEvent.
func (o *Order) ApplyEvent(
	def *statemachine.Definition,
	eventType string,
	occurredAt time.Time,
	actor Actor,
	idempotencyKey string,
	correlationID string,
	requestID string,
) (*Event, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if eventType == "" {
		return nil, errs.NewValueIsRequiredError("event type")
	}

	if def.IsFinal(o.status) {
		return nil, errs.NewFinalStateViolationError(o.id.String(), o.status)
	}

	next, ok := def.NextState(o.status, eventType)
	if !ok {
		return nil, errs.NewInvalidTransitionError(o.status, eventType)
	}

	event, err := RestoreEvent(
		kernel.NewUUID(),
		o.id,
		eventType,
		o.status,
		next,
		occurredAt,
		actor,
		idempotencyKey,
		correlationID,
		requestID,
	)
	if err != nil {
		return nil, err
	}

	o.status = next
	o.updatedAt = occurredAt
	o.version++
	o.events = append(o.events, event)
	o.newEvents = append(o.newEvents, event)

	return event, nil
}

// RefreshSapSnapshot unconditionally overwrites the external-document
// overlay. This is always safe: snapshot fields carry no lifecycle meaning.
func (o *Order) RefreshSapSnapshot(snap SapSnapshot) {
	o.sap = snap
}

// BackfillExternalOrderID sets the external order id only when it was
// previously unset; an established correlation is never overwritten.
func (o *Order) BackfillExternalOrderID(externalOrderID string) {
	if o.externalOrderID == "" {
		o.externalOrderID = externalOrderID
	}
}

// ReplaceItems swaps the item lines and customer id wholesale. Callers must
// gate this on the state machine definition's items-mutable flag for the
// current status; once picking work has begun the lines are frozen.
func (o *Order) ReplaceItems(customerID string, items []Item) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	o.items = append([]Item(nil), items...)
	o.itemsDirty = true
	return nil
}
