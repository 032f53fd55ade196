// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"wms/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// IdempotencyStoreFactory provides access to the idempotency store within a transaction.
	IdempotencyStoreFactory interface {
		IdempotencyStore() ports.IdempotencyStore
	}

	// MirrorRepoFactory provides access to the mirror repository within a transaction.
	MirrorRepoFactory interface {
		MirrorRepository() ports.MirrorRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions spanning the order aggregate and the
	// idempotency store. Both writes must commit or roll back together so a
	// recorded response always refers to a persisted order.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		IdempotencyStoreFactory
	}

	// CreateOrderUoWFactory creates new create-order unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// MirrorUoW manages transactions for master-data mirror upserts.
	MirrorUoW interface {
		TxManager
		MirrorRepoFactory
	}

	// MirrorUoWFactory creates new mirror unit of work instances.
	MirrorUoWFactory interface {
		Create() MirrorUoW
	}
)
