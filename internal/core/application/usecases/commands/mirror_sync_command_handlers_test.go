package commands_test

import (
	"context"
	"errors"
	"testing"

	"wms/internal/core/application/usecases/commands"
	"wms/internal/core/domain/model/mirror"
	"wms/internal/core/ports"
	"wms/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMirrorSyncCommandHandler_HandleProducts(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewSyncProductsCommand([]mirror.Product{
		{SKU: "X1", Description: "Widget", UnitOfMeasure: "UN", IsActive: true},
	})
	require.NoError(t, err)

	repo := new(MockMirrorRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MirrorRepository").Return(repo).Once(),
		repo.On("UpsertProducts", mock.Anything, cmd.Products()).
			Return(ports.UpsertCounts{Created: 1}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMirrorUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMirrorSyncCommandHandler(factory)
	counts, err := h.HandleProducts(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, 1, counts.Created)
	assert.Equal(t, 1, counts.Upserted())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMirrorSyncCommandHandler_HandleInventory_RepoError(t *testing.T) {
	ctx := context.Background()
	cmd, err := commands.NewSyncInventoryCommand([]mirror.InventoryStock{
		{SKU: "X1", WarehouseCode: "WH1", OnHand: 10},
	})
	require.NoError(t, err)

	repo := new(MockMirrorRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MirrorRepository").Return(repo).Once(),
		repo.On("UpsertInventory", mock.Anything, cmd.Stocks()).
			Return(ports.UpsertCounts{}, errors.New("upsert error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockMirrorUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMirrorSyncCommandHandler(factory)
	_, err = h.HandleInventory(ctx, cmd)
	require.Error(t, err)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewMirrorSyncCommands_Validation(t *testing.T) {
	_, err := commands.NewSyncProductsCommand([]mirror.Product{{SKU: ""}})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewSyncInventoryCommand([]mirror.InventoryStock{{SKU: "X1"}})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = commands.NewSyncCustomersCommand([]mirror.Customer{{CardCode: ""}})
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	var cmd commands.SyncCustomersCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrSyncCustomersCommandIsNotConstructed)
}
