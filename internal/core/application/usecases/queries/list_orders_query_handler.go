package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler retrieves pages of order projections.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListOrdersQueryHandler creates a handler for order listings.
func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

// Handle executes the listing, newest updates first.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (ListOrdersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListOrdersResponse{}, err
	}

	where := "1 = 1"
	args := make([]any, 0, 2)
	if query.Status() != "" {
		where += " AND status = ?"
		args = append(args, query.Status())
	}
	if query.ExternalOrderID() != "" {
		where += " AND external_order_id ILIKE ?"
		args = append(args, "%"+query.ExternalOrderID()+"%")
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListOrdersResponse{}, err
	}

	pageArgs := append(append([]any(nil), args...), query.Limit(), query.Offset())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			external_order_id,
			customer_id,
			status,
			version,
			created_at,
			updated_at
		FROM orders
		WHERE `+where+`
		ORDER BY updated_at DESC
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListOrdersResponse{}, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		response, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return ListOrdersResponse{}, scanErr
		}
		orders = append(orders, response)
		ids = append(ids, uuid.MustParse(response.OrderID))
	}
	if err = rows.Err(); err != nil {
		return ListOrdersResponse{}, err
	}

	for i, id := range ids {
		items, itemsErr := loadItems(ctx, h.db, id)
		if itemsErr != nil {
			return ListOrdersResponse{}, itemsErr
		}
		orders[i].Items = items
	}

	return ListOrdersResponse{
		Items:  orders,
		Total:  total,
		Limit:  query.Limit(),
		Offset: query.Offset(),
	}, nil
}
