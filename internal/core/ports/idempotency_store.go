package ports

import (
	"context"

	"wms/internal/core/domain/model/idempotency"
)

// IdempotencyStore persists the outcome of idempotent operations keyed by
// (scope, key).
type IdempotencyStore interface {
	// Get retrieves the stored record for (scope, key), or
	// errs.ObjectNotFoundError when the pair was never seen.
	Get(ctx context.Context, scope, key string) (*idempotency.Record, error)

	// Add inserts a new record. When a concurrent request inserted the same
	// (scope, key) first, Add returns errs.ErrIdempotencyConflict (wrapped);
	// the caller re-reads and treats the stored record as authoritative.
	Add(ctx context.Context, record *idempotency.Record) error
}
