package commands

import (
	"context"
	"errors"
	"time"

	"wms/internal/core/domain/model/statemachine"
	"wms/internal/pkg/errs"
)

// maxPostEventAttempts bounds the optimistic-concurrency retry loop.
const maxPostEventAttempts = 3

// PostOrderEventCommandHandler applies lifecycle events to orders under
// optimistic concurrency. A version conflict reloads the aggregate and
// retries against the new state, up to maxPostEventAttempts times.
type PostOrderEventCommandHandler struct {
	uowFactory OrderUoWFactory
	definition *statemachine.Definition
}

// NewPostOrderEventCommandHandler creates a handler for posting lifecycle events.
func NewPostOrderEventCommandHandler(
	uowFactory OrderUoWFactory,
	definition *statemachine.Definition,
) PostOrderEventCommandHandler {
	return PostOrderEventCommandHandler{
		uowFactory: uowFactory,
		definition: definition,
	}
}

// Handle processes the event command. The idempotent-replay check runs before
// any transition logic, so a retry of an already-applied event succeeds even
// when the order has since reached a terminal status.
func (h *PostOrderEventCommandHandler) Handle(ctx context.Context, cmd PostOrderEventCommand) (EventOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return EventOutcome{}, err
	}

	for attempt := 1; attempt <= maxPostEventAttempts; attempt++ {
		outcome, err := h.attempt(ctx, cmd)
		if err != nil {
			if errors.Is(err, errs.ErrConcurrencyConflict) {
				continue
			}
			return EventOutcome{}, err
		}
		return outcome, nil
	}

	return EventOutcome{}, errs.NewConcurrencyConflictError(cmd.OrderID().String(), maxPostEventAttempts)
}

func (h *PostOrderEventCommandHandler) attempt(ctx context.Context, cmd PostOrderEventCommand) (EventOutcome, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return EventOutcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return EventOutcome{}, err
	}

	if replayed := aggregate.EventByIdempotencyKey(cmd.EventType(), cmd.IdempotencyKey()); replayed != nil {
		return EventOutcome{
			OrderID:        aggregate.ID().String(),
			PreviousStatus: replayed.FromStatus(),
			CurrentStatus:  replayed.ToStatus(),
			Applied:        true,
			Event:          NewEventResult(replayed),
		}, nil
	}

	occurredAt := cmd.OccurredAt()
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	previous := aggregate.Status()
	event, err := aggregate.ApplyEvent(
		h.definition,
		cmd.EventType(),
		occurredAt,
		cmd.Actor(),
		cmd.IdempotencyKey(),
		cmd.CorrelationID(),
		cmd.RequestID(),
	)
	if err != nil {
		return EventOutcome{}, err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return EventOutcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return EventOutcome{}, err
	}

	return EventOutcome{
		OrderID:        aggregate.ID().String(),
		PreviousStatus: previous,
		CurrentStatus:  aggregate.Status(),
		Applied:        true,
		Event:          NewEventResult(event),
	}, nil
}
