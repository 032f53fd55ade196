package commands

import (
	"context"

	"wms/internal/core/ports"
)

// MirrorSyncCommandHandler handles the three master-data bulk upserts. Each
// batch runs in its own transaction; rows within a batch commit together.
type MirrorSyncCommandHandler struct {
	uowFactory MirrorUoWFactory
}

// NewMirrorSyncCommandHandler creates a handler for master-data mirror syncs.
func NewMirrorSyncCommandHandler(uowFactory MirrorUoWFactory) MirrorSyncCommandHandler {
	return MirrorSyncCommandHandler{
		uowFactory: uowFactory,
	}
}

// HandleProducts upserts one batch of catalog mirrors.
func (h *MirrorSyncCommandHandler) HandleProducts(ctx context.Context, cmd SyncProductsCommand) (ports.UpsertCounts, error) {
	if err := cmd.Validate(); err != nil {
		return ports.UpsertCounts{}, err
	}
	return h.inTx(ctx, func(repo ports.MirrorRepository) (ports.UpsertCounts, error) {
		return repo.UpsertProducts(ctx, cmd.Products())
	})
}

// HandleInventory upserts one batch of inventory mirrors.
func (h *MirrorSyncCommandHandler) HandleInventory(ctx context.Context, cmd SyncInventoryCommand) (ports.UpsertCounts, error) {
	if err := cmd.Validate(); err != nil {
		return ports.UpsertCounts{}, err
	}
	return h.inTx(ctx, func(repo ports.MirrorRepository) (ports.UpsertCounts, error) {
		return repo.UpsertInventory(ctx, cmd.Stocks())
	})
}

// HandleCustomers upserts one batch of business-partner mirrors.
func (h *MirrorSyncCommandHandler) HandleCustomers(ctx context.Context, cmd SyncCustomersCommand) (ports.UpsertCounts, error) {
	if err := cmd.Validate(); err != nil {
		return ports.UpsertCounts{}, err
	}
	return h.inTx(ctx, func(repo ports.MirrorRepository) (ports.UpsertCounts, error) {
		return repo.UpsertCustomers(ctx, cmd.Customers())
	})
}

func (h *MirrorSyncCommandHandler) inTx(
	ctx context.Context,
	fn func(repo ports.MirrorRepository) (ports.UpsertCounts, error),
) (ports.UpsertCounts, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return ports.UpsertCounts{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	counts, err := fn(uow.MirrorRepository())
	if err != nil {
		return ports.UpsertCounts{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return ports.UpsertCounts{}, err
	}
	return counts, nil
}
