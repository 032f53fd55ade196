package commands

import (
	"context"
	"crypto/subtle"
	"errors"
	"strconv"
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"
	"wms/internal/core/domain/model/statemachine"
	"wms/internal/core/ports"
	"wms/internal/pkg/errs"
)

// SyncExternalOrdersCommandHandler merges external sales-order snapshots into
// the local order set. The whole batch runs in one transaction.
//
// Matching is two-step: by the external document entry first, then by the
// external order id. Unmatched orders are created in the initial lifecycle
// state. Matched orders always get a fresh snapshot; their item lines and
// customer are replaced only while the current status still permits item
// mutation, so picking work is never invalidated.
type SyncExternalOrdersCommandHandler struct {
	uowFactory   OrderUoWFactory
	definition   *statemachine.Definition
	sharedSecret string
}

// NewSyncExternalOrdersCommandHandler creates a reconciliation handler.
func NewSyncExternalOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	definition *statemachine.Definition,
	sharedSecret string,
) SyncExternalOrdersCommandHandler {
	return SyncExternalOrdersCommandHandler{
		uowFactory:   uowFactory,
		definition:   definition,
		sharedSecret: sharedSecret,
	}
}

// Handle processes one reconciliation batch.
func (h *SyncExternalOrdersCommandHandler) Handle(ctx context.Context, cmd SyncExternalOrdersCommand) (SyncResult, error) {
	if err := cmd.Validate(); err != nil {
		return SyncResult{}, err
	}

	if subtle.ConstantTimeCompare([]byte(cmd.SharedSecret()), []byte(h.sharedSecret)) != 1 {
		return SyncResult{}, errs.NewForbiddenError("invalid internal secret")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SyncResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var result SyncResult
	orderRepo := uow.OrderRepository()

	for _, sapOrder := range cmd.Orders() {
		created, updated, err := h.merge(ctx, orderRepo, sapOrder)
		if err != nil {
			return SyncResult{}, err
		}
		if created {
			result.Created++
		}
		if updated {
			result.Updated++
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return SyncResult{}, err
	}

	result.Upserted = result.Created + result.Updated
	return result, nil
}

func (h *SyncExternalOrdersCommandHandler) merge(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	sapOrder ports.SapOrder,
) (created, updated bool, err error) {
	externalOrderID := strconv.FormatInt(sapOrder.DocNum, 10)

	existing, err := h.match(ctx, orderRepo, sapOrder.DocEntry, externalOrderID)
	if err != nil {
		return false, false, err
	}

	snapshot := order.SapSnapshot{
		DocEntry:   &sapOrder.DocEntry,
		DocNum:     &sapOrder.DocNum,
		DocStatus:  sapOrder.DocStatus,
		UpdateDate: sapOrder.UpdateDate,
		UpdateTime: sapOrder.UpdateTime,
	}

	items, err := itemsFromLines(sapOrder.Lines)
	if err != nil {
		return false, false, err
	}

	if existing == nil {
		aggregate, err := order.NewOrder(
			kernel.NewUUID(),
			sapOrder.CardCode,
			externalOrderID,
			items,
			h.definition,
			time.Now().UTC(),
		)
		if err != nil {
			return false, false, err
		}
		aggregate.RefreshSapSnapshot(snapshot)

		if err = orderRepo.Add(ctx, aggregate); err != nil {
			return false, false, err
		}
		return true, false, nil
	}

	existing.RefreshSapSnapshot(snapshot)
	existing.BackfillExternalOrderID(externalOrderID)

	// Item lines freeze once the status leaves the mutable set; the
	// snapshot refresh above still persists either way.
	if h.definition.ItemsMutableIn(existing.Status()) {
		if err = existing.ReplaceItems(sapOrder.CardCode, items); err != nil {
			return false, false, err
		}
		updated = true
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return false, false, err
	}
	return false, updated, nil
}

func (h *SyncExternalOrdersCommandHandler) match(
	ctx context.Context,
	orderRepo ports.OrderRepository,
	docEntry int64,
	externalOrderID string,
) (*order.Order, error) {
	existing, err := orderRepo.GetBySapDocEntry(ctx, docEntry)
	if err == nil {
		return existing, nil
	}
	var notFound *errs.ObjectNotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	existing, err = orderRepo.GetByExternalOrderID(ctx, externalOrderID)
	if err == nil {
		return existing, nil
	}
	if !errors.As(err, &notFound) {
		return nil, err
	}
	return nil, nil
}

func itemsFromLines(lines []ports.SapOrderLine) ([]order.Item, error) {
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		item, err := order.NewItem(line.ItemCode, line.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
