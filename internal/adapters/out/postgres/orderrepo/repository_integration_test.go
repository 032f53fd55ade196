package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"wms/internal/adapters/out/postgres/orderrepo"
	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"
	"wms/internal/core/domain/model/statemachine"
	"wms/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance, including the optimistic version check
// and the event dedup index.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	definition *statemachine.Definition
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&orderrepo.OrderEventDTO{},
	))

	suite.definition, err = statemachine.NewDefinition(statemachine.Document{
		InitialState: "A",
		FinalStates:  []string{"C"},
		Transitions: []statemachine.Transition{
			{From: "A", EventType: "START", To: "B"},
			{From: "B", EventType: "FINISH", To: "C"},
		},
	})
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items, order_events").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(externalOrderID string) *order.Order {
	item, err := order.NewItem("X1", 2)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		"CUST-1",
		externalOrderID,
		[]order.Item{item},
		suite.definition,
		time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) actor() order.Actor {
	actor, err := order.NewActor(order.ActorKindUser, "picker-1")
	suite.Require().NoError(err)
	return actor
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("7001")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID().String(), loaded.ID().String())
	suite.Equal("A", loaded.Status())
	suite.Equal(0, loaded.Version())
	suite.Equal("7001", loaded.ExternalOrderID())
	suite.Equal("CUST-1", loaded.CustomerID())
	suite.Require().Len(loaded.Items(), 1)
	suite.Equal("X1", loaded.Items()[0].SKU())
	suite.Empty(loaded.Events())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsEventAndVersion() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("7001")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = loaded.ApplyEvent(
		suite.definition, "START",
		time.Now().UTC().Truncate(time.Microsecond),
		suite.actor(), "key-1", "corr-1", "req-1",
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("B", reloaded.Status())
	suite.Equal(1, reloaded.Version())
	suite.Require().Len(reloaded.Events(), 1)
	suite.Equal("START", reloaded.Events()[0].Type())
	suite.Equal("key-1", reloaded.Events()[0].IdempotencyKey())
	suite.NotNil(reloaded.EventByIdempotencyKey("START", "key-1"))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersionConflicts() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("7001")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	first, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	second, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = first.ApplyEvent(suite.definition, "START", time.Now().UTC(), suite.actor(), "", "", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, first))

	// the second writer still holds base version 0
	_, err = second.ApplyEvent(suite.definition, "START", time.Now().UTC(), suite.actor(), "", "", "")
	suite.Require().NoError(err)

	err = suite.repository.Update(ctx, second)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrConcurrencyConflict)

	// the losing write changed nothing
	reloaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(1, reloaded.Version())
	suite.Len(reloaded.Events(), 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_ReplacedItems() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("7001")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	itemA, err := order.NewItem("Y1", 3)
	suite.Require().NoError(err)
	itemB, err := order.NewItem("Y2", 1)
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.ReplaceItems("CUST-2", []order.Item{itemA, itemB}))

	suite.Require().NoError(suite.repository.Update(ctx, loaded))

	reloaded, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("CUST-2", reloaded.CustomerID())
	suite.Require().Len(reloaded.Items(), 2)
	suite.Equal("Y1", reloaded.Items()[0].SKU())
	suite.Equal("Y2", reloaded.Items()[1].SKU())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByExternalOrderID() {
	ctx := context.Background()

	testOrder := suite.createTestOrder("7001")
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.GetByExternalOrderID(ctx, "7001")
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID().String(), loaded.ID().String())

	_, err = suite.repository.GetByExternalOrderID(ctx, "9999")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetBySapDocEntry() {
	ctx := context.Background()

	docEntry := int64(42)
	docNum := int64(7001)
	testOrder := suite.createTestOrder("7001")
	testOrder.RefreshSapSnapshot(order.SapSnapshot{
		DocEntry:  &docEntry,
		DocNum:    &docNum,
		DocStatus: "O",
	})
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.GetBySapDocEntry(ctx, 42)
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID().String(), loaded.ID().String())
	suite.Equal(int64(42), *loaded.SapSnapshot().DocEntry)

	_, err = suite.repository.GetBySapDocEntry(ctx, 43)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
