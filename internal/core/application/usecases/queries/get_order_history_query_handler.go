package queries

import (
	"context"
	"database/sql"

	"wms/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler retrieves the event trail of one order.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for order history lookups.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the query. The order must exist; an order with no events
// yet returns an empty trail.
func (h GetOrderHistoryQueryHandler) Handle(ctx context.Context, query GetOrderHistoryQuery) (OrderHistoryResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderHistoryResponse{}, err
	}

	var exists int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders WHERE id = ?", query.OrderID().Bytes()).
		Scan(&exists).Error; err != nil {
		return OrderHistoryResponse{}, err
	}
	if exists == 0 {
		return OrderHistoryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			type,
			from_status,
			to_status,
			occurred_at,
			actor_kind,
			actor_id,
			idempotency_key
		FROM order_events
		WHERE order_id = ?
		ORDER BY occurred_at ASC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderHistoryResponse{}, err
	}
	defer rows.Close()

	events := make([]OrderEventResponse, 0)
	for rows.Next() {
		var (
			event          OrderEventResponse
			eventID        uuid.UUID
			idempotencyKey sql.NullString
		)
		if err = rows.Scan(
			&eventID,
			&event.Type,
			&event.From,
			&event.To,
			&event.OccurredAt,
			&event.ActorKind,
			&event.ActorID,
			&idempotencyKey,
		); err != nil {
			return OrderHistoryResponse{}, err
		}
		event.EventID = eventID.String()
		event.IdempotencyKey = idempotencyKey.String
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return OrderHistoryResponse{}, err
	}

	return OrderHistoryResponse{
		OrderID: query.OrderID().String(),
		Events:  events,
	}, nil
}
