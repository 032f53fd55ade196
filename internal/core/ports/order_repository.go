package ports

import (
	"context"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Writes are versioned: Update applies only when the stored version still
// equals the aggregate's base version.
type OrderRepository interface {
	// Add persists a new order aggregate to storage, including any events
	// already appended to it.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate conditionally
	// on its base version. Returns errs.ErrConcurrencyConflict (wrapped)
	// when a concurrent writer advanced the version first; the caller
	// reloads and retries.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its full event history.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByExternalOrderID retrieves the order correlated to an external
	// order id, or errs.ObjectNotFoundError.
	GetByExternalOrderID(ctx context.Context, externalOrderID string) (*order.Order, error)

	// GetBySapDocEntry retrieves the order correlated to an external
	// document entry, or errs.ObjectNotFoundError.
	GetBySapDocEntry(ctx context.Context, docEntry int64) (*order.Order, error)
}
