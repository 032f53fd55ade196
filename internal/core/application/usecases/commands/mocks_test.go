package commands_test

import (
	"context"

	"wms/internal/core/application/usecases/commands"
	"wms/internal/core/domain/model/idempotency"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/mirror"
	"wms/internal/core/domain/model/order"
	"wms/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByExternalOrderID(ctx context.Context, externalOrderID string) (*order.Order, error) {
	args := m.Called(ctx, externalOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetBySapDocEntry(ctx context.Context, docEntry int64) (*order.Order, error) {
	args := m.Called(ctx, docEntry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Get(ctx context.Context, scope, key string) (*idempotency.Record, error) {
	args := m.Called(ctx, scope, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idempotency.Record), args.Error(1)
}

func (m *MockIdempotencyStore) Add(ctx context.Context, record *idempotency.Record) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockMirrorRepository struct{ mock.Mock }

func (m *MockMirrorRepository) UpsertProducts(ctx context.Context, products []mirror.Product) (ports.UpsertCounts, error) {
	args := m.Called(ctx, products)
	return args.Get(0).(ports.UpsertCounts), args.Error(1)
}

func (m *MockMirrorRepository) UpsertInventory(ctx context.Context, stocks []mirror.InventoryStock) (ports.UpsertCounts, error) {
	args := m.Called(ctx, stocks)
	return args.Get(0).(ports.UpsertCounts), args.Error(1)
}

func (m *MockMirrorRepository) UpsertCustomers(ctx context.Context, customers []mirror.Customer) (ports.UpsertCounts, error) {
	args := m.Called(ctx, customers)
	return args.Get(0).(ports.UpsertCounts), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) IdempotencyStore() ports.IdempotencyStore {
	args := m.Called()
	return args.Get(0).(ports.IdempotencyStore)
}

func (m *MockUoW) MirrorRepository() ports.MirrorRepository {
	args := m.Called()
	return args.Get(0).(ports.MirrorRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockCreateOrderUoWFactory struct{ mock.Mock }

func (m *MockCreateOrderUoWFactory) Create() commands.CreateOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateOrderUoW)
}

type MockMirrorUoWFactory struct{ mock.Mock }

func (m *MockMirrorUoWFactory) Create() commands.MirrorUoW {
	args := m.Called()
	return args.Get(0).(commands.MirrorUoW)
}
