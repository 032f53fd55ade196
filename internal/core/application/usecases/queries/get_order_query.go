// Package queries contains read-only operations over the order store.
// Query handlers bypass the domain aggregate and read projections directly,
// per the CQRS split used across the application layer.
package queries

import (
	"errors"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its item lines.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the queried order identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one item line in a query response.
type OrderItemResponse struct {
	SKU      string  `json:"sku"`
	Quantity float64 `json:"quantity"`
}

// OrderResponse is the read-side projection of an order.
type OrderResponse struct {
	OrderID         string              `json:"orderId"`
	ExternalOrderID string              `json:"externalOrderId,omitempty"`
	CustomerID      string              `json:"customerId"`
	Status          string              `json:"status"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	Version         int                 `json:"version"`
}
