// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The version column backs optimistic concurrency; every accepted event
// increments it by exactly one.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	ExternalOrderID *string   `gorm:"uniqueIndex"`
	CustomerID      string    `gorm:"index"`
	Status          string    `gorm:"index"`
	Version         int
	SapDocEntry     *int64 `gorm:"uniqueIndex"`
	SapDocNum       *int64
	SapDocStatus    string
	SapUpdateDate   string
	SapUpdateTime   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents one item line of an order.
type OrderItemDTO struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	OrderID  uuid.UUID `gorm:"type:uuid;index"`
	SKU      string
	Quantity float64
}

// TableName specifies the database table name for order item lines.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// OrderEventDTO represents one append-only lifecycle event.
// The unique index over (order_id, type, idempotency_key) enforces the
// at-most-once guarantee at the storage level; NULL keys stay unconstrained.
type OrderEventDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index;uniqueIndex:idx_order_events_dedup"`
	Type           string    `gorm:"uniqueIndex:idx_order_events_dedup"`
	FromStatus     string
	ToStatus       string
	OccurredAt     time.Time `gorm:"index"`
	ActorKind      string
	ActorID        string
	IdempotencyKey *string `gorm:"uniqueIndex:idx_order_events_dedup"`
	CorrelationID  string
	RequestID      string
}

// TableName specifies the database table name for order events.
func (OrderEventDTO) TableName() string {
	return "order_events"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	snap := aggregate.SapSnapshot()
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		ExternalOrderID: optional(aggregate.ExternalOrderID()),
		CustomerID:      aggregate.CustomerID(),
		Status:          aggregate.Status(),
		Version:         aggregate.Version(),
		SapDocEntry:     snap.DocEntry,
		SapDocNum:       snap.DocNum,
		SapDocStatus:    snap.DocStatus,
		SapUpdateDate:   snap.UpdateDate,
		SapUpdateTime:   snap.UpdateTime,
		CreatedAt:       aggregate.CreatedAt(),
		UpdatedAt:       aggregate.UpdatedAt(),
	}
}

// itemsFromDomain converts the aggregate's item lines to row form.
func itemsFromDomain(aggregate *order.Order) []OrderItemDTO {
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, it := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:  aggregate.ID().Bytes(),
			SKU:      it.SKU(),
			Quantity: it.Quantity(),
		})
	}
	return items
}

// eventFromDomain converts one event to row form.
func eventFromDomain(e *order.Event) OrderEventDTO {
	return OrderEventDTO{
		ID:             e.ID().Bytes(),
		OrderID:        e.OrderID().Bytes(),
		Type:           e.Type(),
		FromStatus:     e.FromStatus(),
		ToStatus:       e.ToStatus(),
		OccurredAt:     e.OccurredAt(),
		ActorKind:      string(e.Actor().Kind()),
		ActorID:        e.Actor().ID(),
		IdempotencyKey: optional(e.IdempotencyKey()),
		CorrelationID:  e.CorrelationID(),
		RequestID:      e.RequestID(),
	}
}

// toDomain converts database rows back to an order domain aggregate.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO, eventDTOs []OrderEventDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(itemDTOs))
	for _, it := range itemDTOs {
		item, itemErr := order.NewItem(it.SKU, it.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	events := make([]*order.Event, 0, len(eventDTOs))
	for _, ev := range eventDTOs {
		event, eventErr := eventToDomain(ev)
		if eventErr != nil {
			return nil, eventErr
		}
		events = append(events, event)
	}

	return order.RestoreOrder(
		id,
		deref(dto.ExternalOrderID),
		dto.CustomerID,
		dto.Status,
		dto.Version,
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
		order.SapSnapshot{
			DocEntry:   dto.SapDocEntry,
			DocNum:     dto.SapDocNum,
			DocStatus:  dto.SapDocStatus,
			UpdateDate: dto.SapUpdateDate,
			UpdateTime: dto.SapUpdateTime,
		},
		events,
	)
}

func eventToDomain(dto OrderEventDTO) (*order.Event, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	actor, err := order.NewActor(order.ActorKind(dto.ActorKind), dto.ActorID)
	if err != nil {
		return nil, err
	}

	return order.RestoreEvent(
		id,
		orderID,
		dto.Type,
		dto.FromStatus,
		dto.ToStatus,
		dto.OccurredAt,
		actor,
		deref(dto.IdempotencyKey),
		dto.CorrelationID,
		dto.RequestID,
	)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
