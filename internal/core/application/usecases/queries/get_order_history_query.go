package queries

import (
	"errors"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"
)

var (
	ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
		"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
	)
)

// GetOrderHistoryQuery retrieves the full event trail of one order.
type GetOrderHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a history query for the given order.
func NewGetOrderHistoryQuery(orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderHistoryQuery{}, err
	}
	return GetOrderHistoryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// OrderID returns the queried order identifier.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderEventResponse is one recorded lifecycle event.
type OrderEventResponse struct {
	EventID        string    `json:"eventId"`
	Type           string    `json:"type"`
	From           string    `json:"from"`
	To             string    `json:"to"`
	OccurredAt     time.Time `json:"occurredAt"`
	ActorKind      string    `json:"actorKind"`
	ActorID        string    `json:"actorId"`
	IdempotencyKey string    `json:"idempotencyKey,omitempty"`
}

// OrderHistoryResponse is the ordered event trail of one order, ascending by
// occurrence time.
type OrderHistoryResponse struct {
	OrderID string               `json:"orderId"`
	Events  []OrderEventResponse `json:"events"`
}
