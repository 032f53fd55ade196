package ports

import (
	"context"

	"wms/internal/core/domain/model/mirror"
)

// UpsertCounts reports how a bulk upsert split between inserts and updates.
type UpsertCounts struct {
	Created int
	Updated int
}

// Upserted returns the total number of rows touched.
func (c UpsertCounts) Upserted() int {
	return c.Created + c.Updated
}

// MirrorRepository persists external master-data mirrors. Upserts match on
// the natural key (SKU, SKU+warehouse, card code) and replace every mirrored
// field on conflict.
type MirrorRepository interface {
	UpsertProducts(ctx context.Context, products []mirror.Product) (UpsertCounts, error)
	UpsertInventory(ctx context.Context, stocks []mirror.InventoryStock) (UpsertCounts, error)
	UpsertCustomers(ctx context.Context, customers []mirror.Customer) (UpsertCounts, error)
}
