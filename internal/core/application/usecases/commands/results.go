package commands

import (
	"time"

	"wms/internal/core/domain/model/order"
)

// ItemResult is one order line in a command result.
type ItemResult struct {
	SKU      string  `json:"sku"`
	Quantity float64 `json:"quantity"`
}

// OrderResult is the serializable outcome of a command that creates or
// returns an order. It doubles as the idempotency response snapshot, so its
// JSON shape must stay stable.
type OrderResult struct {
	OrderID         string       `json:"orderId"`
	ExternalOrderID string       `json:"externalOrderId,omitempty"`
	CustomerID      string       `json:"customerId"`
	Status          string       `json:"status"`
	Items           []ItemResult `json:"items"`
	CreatedAt       time.Time    `json:"createdAt"`
	UpdatedAt       time.Time    `json:"updatedAt"`
	Version         int          `json:"version"`
}

// NewOrderResult projects an order aggregate into its result form.
func NewOrderResult(o *order.Order) OrderResult {
	items := make([]ItemResult, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, ItemResult{SKU: it.SKU(), Quantity: it.Quantity()})
	}
	return OrderResult{
		OrderID:         o.ID().String(),
		ExternalOrderID: o.ExternalOrderID(),
		CustomerID:      o.CustomerID(),
		Status:          o.Status(),
		Items:           items,
		CreatedAt:       o.CreatedAt(),
		UpdatedAt:       o.UpdatedAt(),
		Version:         o.Version(),
	}
}

// EventResult describes one recorded lifecycle event.
type EventResult struct {
	EventID        string    `json:"eventId"`
	Type           string    `json:"type"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	OccurredAt     time.Time `json:"occurredAt"`
	ActorKind      string    `json:"actorKind"`
	ActorID        string    `json:"actorId"`
	IdempotencyKey string    `json:"idempotencyKey,omitempty"`
}

// NewEventResult projects an event into its result form.
func NewEventResult(e *order.Event) EventResult {
	return EventResult{
		EventID:        e.ID().String(),
		Type:           e.Type(),
		From:           e.FromStatus(),
		To:             e.ToStatus(),
		OccurredAt:     e.OccurredAt(),
		ActorKind:      string(e.Actor().Kind()),
		ActorID:        e.Actor().ID(),
		IdempotencyKey: e.IdempotencyKey(),
	}
}

// EventOutcome is the result of posting a lifecycle event: the status change
// and the event that recorded it. Applied is true both for fresh transitions
// and for idempotent replays, which return the originally stored event.
type EventOutcome struct {
	OrderID        string      `json:"orderId"`
	PreviousStatus string      `json:"previousStatus"`
	CurrentStatus  string      `json:"currentStatus"`
	Applied        bool        `json:"applied"`
	Event          EventResult `json:"event"`
}

// SyncResult reports how a reconciliation batch split between creates and
// merges. Updated counts only orders whose item lines were actually replaced.
type SyncResult struct {
	Upserted int `json:"upserted"`
	Created  int `json:"created"`
	Updated  int `json:"updated"`
}
