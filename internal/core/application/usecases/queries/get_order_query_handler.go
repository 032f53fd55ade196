package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wms/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order projection from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			external_order_id,
			customer_id,
			status,
			version,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	response, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return OrderResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
		}
		return OrderResponse{}, err
	}

	items, err := loadItems(ctx, h.db, query.OrderID().Bytes())
	if err != nil {
		return OrderResponse{}, err
	}
	response.Items = items

	return response, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrderRow(row rowScanner) (OrderResponse, error) {
	var (
		id              uuid.UUID
		externalOrderID sql.NullString
		customerID      string
		status          string
		version         int
		createdAt       time.Time
		updatedAt       time.Time
	)

	if err := row.Scan(&id, &externalOrderID, &customerID, &status, &version, &createdAt, &updatedAt); err != nil {
		return OrderResponse{}, err
	}

	return OrderResponse{
		OrderID:         id.String(),
		ExternalOrderID: externalOrderID.String,
		CustomerID:      customerID,
		Status:          status,
		Items:           make([]OrderItemResponse, 0),
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
		Version:         version,
	}, nil
}

func loadItems(ctx context.Context, db *gorm.DB, orderID uuid.UUID) ([]OrderItemResponse, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT sku, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		if err = rows.Scan(&item.SKU, &item.Quantity); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
