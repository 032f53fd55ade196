package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"wms/internal/core/domain/model/idempotency"
	"wms/internal/core/domain/model/order"
	"wms/internal/core/domain/model/statemachine"
	"wms/internal/pkg/errs"
	idemhash "wms/internal/pkg/idempotency"
)

// ScopeOrderCreate namespaces idempotency keys of the create-order operation.
const ScopeOrderCreate = "ORDER_CREATE"

// CreateOrderCommandHandler handles order registration with idempotency.
//
// A request carrying an idempotency key resolves in exactly one of three ways:
// the key is new and the order is created, the key was seen with the same
// payload and the stored response is replayed, or the key was seen with a
// different payload and the request is rejected.
type CreateOrderCommandHandler struct {
	uowFactory CreateOrderUoWFactory
	definition *statemachine.Definition
}

// NewCreateOrderCommandHandler creates a handler for order registration.
func NewCreateOrderCommandHandler(
	uowFactory CreateOrderUoWFactory,
	definition *statemachine.Definition,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		definition: definition,
	}
}

// Handle processes the create-order command and returns the resulting order,
// whether freshly created, replayed from the idempotency store, or resolved
// through its external order id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (OrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return OrderResult{}, err
	}

	requestHash, err := h.requestHash(cmd)
	if err != nil {
		return OrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return OrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if cmd.IdempotencyKey() != "" {
		replayed, found, err := h.replay(ctx, uow, cmd.IdempotencyKey(), requestHash)
		if err != nil {
			return OrderResult{}, err
		}
		if found {
			return replayed, nil
		}
	}

	orderRepo := uow.OrderRepository()

	// An order already correlated to the same external id is returned as-is.
	if cmd.ExternalOrderID() != "" {
		existing, err := orderRepo.GetByExternalOrderID(ctx, cmd.ExternalOrderID())
		if err == nil {
			return NewOrderResult(existing), nil
		}

		var notFound *errs.ObjectNotFoundError
		if !errors.As(err, &notFound) {
			return OrderResult{}, err
		}
	}

	now := time.Now().UTC()
	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.ExternalOrderID(),
		cmd.Items(),
		h.definition,
		now,
	)
	if err != nil {
		return OrderResult{}, err
	}

	if err = orderRepo.Add(ctx, aggregate); err != nil {
		return OrderResult{}, err
	}

	result := NewOrderResult(aggregate)

	if cmd.IdempotencyKey() != "" {
		if err = h.record(ctx, uow, cmd.IdempotencyKey(), requestHash, result, now); err != nil {
			// A concurrent request won the insert race. Its stored response
			// is authoritative; ours rolls back.
			if errors.Is(err, errs.ErrIdempotencyConflict) {
				_ = uow.Rollback(ctx)
				return h.replayAfterRace(ctx, cmd.IdempotencyKey(), requestHash)
			}
			return OrderResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return OrderResult{}, err
	}

	return result, nil
}

// requestHash canonicalizes the business payload of the command. The order id
// and the key itself stay out of the hash: a retry carries a fresh order id
// but must still match.
func (h *CreateOrderCommandHandler) requestHash(cmd CreateOrderCommand) (string, error) {
	items := make([]ItemResult, 0, len(cmd.Items()))
	for _, it := range cmd.Items() {
		items = append(items, ItemResult{SKU: it.SKU(), Quantity: it.Quantity()})
	}
	return idemhash.HashPayload(struct {
		CustomerID      string       `json:"customerId"`
		ExternalOrderID string       `json:"externalOrderId,omitempty"`
		Items           []ItemResult `json:"items"`
	}{
		CustomerID:      cmd.CustomerID(),
		ExternalOrderID: cmd.ExternalOrderID(),
		Items:           items,
	})
}

func (h *CreateOrderCommandHandler) replay(
	ctx context.Context,
	uow CreateOrderUoW,
	key, requestHash string,
) (OrderResult, bool, error) {
	record, err := uow.IdempotencyStore().Get(ctx, ScopeOrderCreate, key)
	if err != nil {
		var notFound *errs.ObjectNotFoundError
		if errors.As(err, &notFound) {
			return OrderResult{}, false, nil
		}
		return OrderResult{}, false, err
	}

	if !record.MatchesRequest(requestHash) {
		return OrderResult{}, false, errs.NewIdempotencyConflictError(ScopeOrderCreate, key)
	}

	var result OrderResult
	if err := json.Unmarshal(record.ResponseSnapshot(), &result); err != nil {
		return OrderResult{}, false, fmt.Errorf("decode idempotency snapshot: %w", err)
	}
	return result, true, nil
}

func (h *CreateOrderCommandHandler) record(
	ctx context.Context,
	uow CreateOrderUoW,
	key, requestHash string,
	result OrderResult,
	now time.Time,
) error {
	snapshot, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode idempotency snapshot: %w", err)
	}

	record, err := idempotency.NewRecord(ScopeOrderCreate, key, requestHash, snapshot, now)
	if err != nil {
		return err
	}

	return uow.IdempotencyStore().Add(ctx, record)
}

func (h *CreateOrderCommandHandler) replayAfterRace(ctx context.Context, key, requestHash string) (OrderResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return OrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	result, found, err := h.replay(ctx, uow, key, requestHash)
	if err != nil {
		return OrderResult{}, err
	}
	if !found {
		return OrderResult{}, errs.NewIdempotencyConflictError(ScopeOrderCreate, key)
	}
	return result, nil
}
