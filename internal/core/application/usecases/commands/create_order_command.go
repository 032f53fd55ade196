package commands

import (
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"
	"wms/internal/pkg/errs"
	"wms/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new warehouse order.
// Carries the customer, the optional external correlation id, the item lines
// and the optional idempotency key from the transport layer.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      string
	externalOrderID string
	items           []order.Item
	idempotencyKey  string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the order id, customer id and each item line.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID string,
	externalOrderID string,
	items []order.Item,
	idempotencyKey string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.externalOrderID = externalOrderID
	cmd.items = append([]order.Item(nil), items...)
	cmd.idempotencyKey = idempotencyKey

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier assigned to the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the customer the order ships to.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// ExternalOrderID returns the optional external correlation id.
func (c CreateOrderCommand) ExternalOrderID() string {
	return c.externalOrderID
}

// Items returns the item lines of the new order.
func (c CreateOrderCommand) Items() []order.Item {
	return append([]order.Item(nil), c.items...)
}

// IdempotencyKey returns the optional de-duplication token.
func (c CreateOrderCommand) IdempotencyKey() string {
	return c.idempotencyKey
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}
