package queries_test

import (
	"testing"

	"wms/internal/core/application/usecases/queries"
	"wms/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery(t *testing.T) {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	var zero kernel.UUID
	_, err = queries.NewGetOrderQuery(zero)
	require.Error(t, err)

	notConstructed := queries.GetOrderQuery{}
	assert.ErrorIs(t, notConstructed.Validate(), queries.ErrGetOrderQueryIsNotConstructed)
}

func TestNewGetOrderHistoryQuery(t *testing.T) {
	query, err := queries.NewGetOrderHistoryQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	notConstructed := queries.GetOrderHistoryQuery{}
	assert.ErrorIs(t, notConstructed.Validate(), queries.ErrGetOrderHistoryQueryIsNotConstructed)
}

func TestNewListOrdersQuery(t *testing.T) {
	t.Run("defaults and clamping", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery("", "", 0, -5)
		require.NoError(t, err)
		assert.Equal(t, 50, query.Limit())
		assert.Equal(t, 0, query.Offset())

		query, err = queries.NewListOrdersQuery("", "", 9999, 10)
		require.NoError(t, err)
		assert.Equal(t, 200, query.Limit())
		assert.Equal(t, 10, query.Offset())
	})

	t.Run("keeps filters", func(t *testing.T) {
		query, err := queries.NewListOrdersQuery("A_SEPARAR", "7001", 25, 0)
		require.NoError(t, err)
		assert.Equal(t, "A_SEPARAR", query.Status())
		assert.Equal(t, "7001", query.ExternalOrderID())
		assert.Equal(t, 25, query.Limit())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		notConstructed := queries.ListOrdersQuery{}
		assert.ErrorIs(t, notConstructed.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
	})
}

func TestNewListProductsQuery(t *testing.T) {
	query, err := queries.NewListProductsQuery("widget", 0, -1)
	require.NoError(t, err)
	assert.Equal(t, "widget", query.Search())
	assert.Equal(t, 50, query.Limit())
	assert.Equal(t, 0, query.Offset())

	query, err = queries.NewListProductsQuery("", 500, 20)
	require.NoError(t, err)
	assert.Equal(t, 200, query.Limit())
	assert.Equal(t, 20, query.Offset())

	notConstructed := queries.ListProductsQuery{}
	assert.ErrorIs(t, notConstructed.Validate(), queries.ErrListProductsQueryIsNotConstructed)
}

func TestNewListInventoryQuery(t *testing.T) {
	query, err := queries.NewListInventoryQuery("X1", "WH-01", 10, 0)
	require.NoError(t, err)
	assert.Equal(t, "X1", query.SKU())
	assert.Equal(t, "WH-01", query.WarehouseCode())
	assert.Equal(t, 10, query.Limit())

	notConstructed := queries.ListInventoryQuery{}
	assert.ErrorIs(t, notConstructed.Validate(), queries.ErrListInventoryQueryIsNotConstructed)
}

func TestNewListCustomersQuery(t *testing.T) {
	query, err := queries.NewListCustomersQuery("acme", 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "acme", query.Search())
	assert.Equal(t, 50, query.Limit())

	notConstructed := queries.ListCustomersQuery{}
	assert.ErrorIs(t, notConstructed.Validate(), queries.ErrListCustomersQueryIsNotConstructed)
}
