package commands

import (
	"errors"

	"wms/internal/core/domain/model/mirror"
	"wms/internal/pkg/guard"
)

var (
	ErrSyncProductsCommandIsNotConstructed = errors.New(
		"SyncProductsCommand must be created via NewSyncProductsCommand constructor",
	)
	ErrSyncInventoryCommandIsNotConstructed = errors.New(
		"SyncInventoryCommand must be created via NewSyncInventoryCommand constructor",
	)
	ErrSyncCustomersCommandIsNotConstructed = errors.New(
		"SyncCustomersCommand must be created via NewSyncCustomersCommand constructor",
	)
)

// SyncProductsCommand carries one bulk batch of catalog mirrors.
type SyncProductsCommand struct { //nolint:recvcheck //using for validation
	products []mirror.Product

	guard guard.ConstructorGuard
}

// NewSyncProductsCommand creates a bulk product sync command, validating
// every row's natural key up front.
func NewSyncProductsCommand(products []mirror.Product) (SyncProductsCommand, error) {
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return SyncProductsCommand{}, err
		}
	}
	return SyncProductsCommand{
		products: append([]mirror.Product(nil), products...),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncProductsCommand) Validate() error {
	return c.guard.Validate(ErrSyncProductsCommandIsNotConstructed)
}

// Products returns the batch to upsert.
func (c SyncProductsCommand) Products() []mirror.Product {
	return append([]mirror.Product(nil), c.products...)
}

// SyncInventoryCommand carries one bulk batch of inventory mirrors.
type SyncInventoryCommand struct { //nolint:recvcheck //using for validation
	stocks []mirror.InventoryStock

	guard guard.ConstructorGuard
}

// NewSyncInventoryCommand creates a bulk inventory sync command.
func NewSyncInventoryCommand(stocks []mirror.InventoryStock) (SyncInventoryCommand, error) {
	for _, s := range stocks {
		if err := s.Validate(); err != nil {
			return SyncInventoryCommand{}, err
		}
	}
	return SyncInventoryCommand{
		stocks: append([]mirror.InventoryStock(nil), stocks...),
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncInventoryCommand) Validate() error {
	return c.guard.Validate(ErrSyncInventoryCommandIsNotConstructed)
}

// Stocks returns the batch to upsert.
func (c SyncInventoryCommand) Stocks() []mirror.InventoryStock {
	return append([]mirror.InventoryStock(nil), c.stocks...)
}

// SyncCustomersCommand carries one bulk batch of business-partner mirrors.
type SyncCustomersCommand struct { //nolint:recvcheck //using for validation
	customers []mirror.Customer

	guard guard.ConstructorGuard
}

// NewSyncCustomersCommand creates a bulk customer sync command.
func NewSyncCustomersCommand(customers []mirror.Customer) (SyncCustomersCommand, error) {
	for _, c := range customers {
		if err := c.Validate(); err != nil {
			return SyncCustomersCommand{}, err
		}
	}
	return SyncCustomersCommand{
		customers: append([]mirror.Customer(nil), customers...),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SyncCustomersCommand) Validate() error {
	return c.guard.Validate(ErrSyncCustomersCommandIsNotConstructed)
}

// Customers returns the batch to upsert.
func (c SyncCustomersCommand) Customers() []mirror.Customer {
	return append([]mirror.Customer(nil), c.customers...)
}
