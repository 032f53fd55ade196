package commands_test

import (
	"context"
	"testing"
	"time"

	"wms/internal/core/application/usecases/commands"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"
	"wms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func postEventCommand(t *testing.T, orderID kernel.UUID, eventType, key string) commands.PostOrderEventCommand {
	t.Helper()
	cmd, err := commands.NewPostOrderEventCommand(
		orderID, eventType, testActor(t), time.Time{}, key, "corr-1", "req-1",
	)
	require.NoError(t, err)
	return cmd
}

func TestPostOrderEventCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()
	aggregate := restoredOrder(t, "A", 0)
	cmd := postEventCommand(t, aggregate.ID(), "START", "")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPostOrderEventCommandHandler(factory, testDefinition(t))
	outcome, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, "A", outcome.PreviousStatus)
	assert.Equal(t, "B", outcome.CurrentStatus)
	assert.True(t, outcome.Applied)
	assert.Equal(t, "START", outcome.Event.Type)
	assert.Equal(t, "B", aggregate.Status())
	assert.Equal(t, 1, aggregate.Version())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPostOrderEventCommandHandler_Handle_IdempotentReplay(t *testing.T) {
	ctx := context.Background()

	// history already holds the event for this (type, key) pair
	def := testDefinition(t)
	aggregate := restoredOrder(t, "A", 0)
	applied, err := aggregate.ApplyEvent(def, "START", time.Now().UTC(), testActor(t), "key-1", "", "")
	require.NoError(t, err)

	cmd := postEventCommand(t, aggregate.ID(), "START", "key-1")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPostOrderEventCommandHandler(factory, def)
	outcome, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, outcome.Applied)
	assert.Equal(t, applied.ID().String(), outcome.Event.EventID)
	assert.Equal(t, "A", outcome.PreviousStatus)
	assert.Equal(t, "B", outcome.CurrentStatus)
	// no Update expectation: a replay writes nothing

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPostOrderEventCommandHandler_Handle_ReplaysFinalTransition(t *testing.T) {
	ctx := context.Background()

	// the stored FINISH event drove the order into its terminal status;
	// replaying it must return that event, not a final-state rejection
	def := testDefinition(t)
	aggregate := restoredOrder(t, "B", 1)
	applied, err := aggregate.ApplyEvent(def, "FINISH", time.Now().UTC(), testActor(t), "key-1", "", "")
	require.NoError(t, err)
	require.True(t, def.IsFinal(aggregate.Status()))

	cmd := postEventCommand(t, aggregate.ID(), "FINISH", "key-1")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPostOrderEventCommandHandler(factory, def)
	outcome, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.True(t, outcome.Applied)
	assert.Equal(t, applied.ID().String(), outcome.Event.EventID)
	assert.Equal(t, "B", outcome.PreviousStatus)
	assert.Equal(t, "C", outcome.CurrentStatus)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPostOrderEventCommandHandler_Handle_InvalidTransition(t *testing.T) {
	ctx := context.Background()
	aggregate := restoredOrder(t, "A", 0)
	cmd := postEventCommand(t, aggregate.ID(), "FINISH", "")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPostOrderEventCommandHandler(factory, testDefinition(t))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, "A", aggregate.Status())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPostOrderEventCommandHandler_Handle_FinalState(t *testing.T) {
	ctx := context.Background()
	aggregate := restoredOrder(t, "C", 5)
	cmd := postEventCommand(t, aggregate.ID(), "START", "")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPostOrderEventCommandHandler(factory, testDefinition(t))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrFinalStateViolation)
}

func TestPostOrderEventCommandHandler_Handle_RetriesOnVersionConflict(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	cmd := postEventCommand(t, orderID, "START", "")

	// each attempt loads a fresh aggregate; the first write loses the race
	makeAggregate := func() *order.Order {
		now := time.Now().UTC()
		o, err := order.RestoreOrder(orderID, "7001", "CUST-1", "A", 0, testItems(t), now, now, order.SapSnapshot{}, nil)
		require.NoError(t, err)
		return o
	}

	repo := new(MockOrderRepository)
	repo.On("Get", mock.Anything, orderID).Return(makeAggregate(), nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errs.NewConcurrencyConflictError(orderID.String(), 1)).Once()
	repo.On("Get", mock.Anything, orderID).Return(makeAggregate(), nil).Once()
	repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Times(2)
	uow.On("OrderRepository").Return(repo).Times(2)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Times(2)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(2)

	h := commands.NewPostOrderEventCommandHandler(factory, testDefinition(t))
	outcome, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "B", outcome.CurrentStatus)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPostOrderEventCommandHandler_Handle_GivesUpAfterRetryBudget(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	cmd := postEventCommand(t, orderID, "START", "")

	repo := new(MockOrderRepository)
	for i := 0; i < 3; i++ {
		repo.On("Get", mock.Anything, orderID).Return(restoredOrder(t, "A", 0), nil).Once()
	}
	repo.On("Update", mock.Anything, mock.AnythingOfType("*order.Order")).
		Return(errs.NewConcurrencyConflictError(orderID.String(), 1)).Times(3)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Times(3)
	uow.On("OrderRepository").Return(repo).Times(3)
	uow.On("Rollback", ctx).Return(nil).Times(3)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Times(3)

	h := commands.NewPostOrderEventCommandHandler(factory, testDefinition(t))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrConcurrencyConflict)

	var conflict *errs.ConcurrencyConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, 3, conflict.Attempts)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPostOrderEventCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	orderID := kernel.NewUUID()
	cmd := postEventCommand(t, orderID, "START", "")

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderId", orderID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPostOrderEventCommandHandler(factory, testDefinition(t))
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
