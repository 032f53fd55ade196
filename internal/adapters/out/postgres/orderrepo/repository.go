package orderrepo

import (
	"context"
	"errors"

	"wms/internal/core/domain/model/kernel"
	"wms/internal/core/domain/model/order"
	"wms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order, its item lines and any already-appended events.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if items := itemsFromDomain(aggregate); len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	if err := r.insertNewEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update persists the aggregate conditionally on its base version. The write
// succeeds only if no concurrent writer advanced the row since load; otherwise
// it returns a ConcurrencyConflictError and touches nothing.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.BaseVersion()).
		Updates(map[string]any{
			"external_order_id": dto.ExternalOrderID,
			"customer_id":       dto.CustomerID,
			"status":            dto.Status,
			"version":           dto.Version,
			"sap_doc_entry":     dto.SapDocEntry,
			"sap_doc_num":       dto.SapDocNum,
			"sap_doc_status":    dto.SapDocStatus,
			"sap_update_date":   dto.SapUpdateDate,
			"sap_update_time":   dto.SapUpdateTime,
			"updated_at":        dto.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewConcurrencyConflictError(aggregate.ID().String(), 1)
	}

	if aggregate.ItemsDirty() {
		if err := r.db.WithContext(ctx).
			Where("order_id = ?", dto.ID).
			Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}
		if items := itemsFromDomain(aggregate); len(items) > 0 {
			if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
				return err
			}
		}
	}

	if err := r.insertNewEvents(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its item lines and full event history.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.getBy(ctx, "id = ?", id.Bytes(), "orderId", id.String())
}

// GetByExternalOrderID retrieves the order correlated to an external order id.
func (r *GormOrderRepository) GetByExternalOrderID(ctx context.Context, externalOrderID string) (*order.Order, error) {
	if externalOrderID == "" {
		return nil, errs.NewValueIsRequiredError("externalOrderId")
	}
	return r.getBy(ctx, "external_order_id = ?", externalOrderID, "externalOrderId", externalOrderID)
}

// GetBySapDocEntry retrieves the order correlated to an external document entry.
func (r *GormOrderRepository) GetBySapDocEntry(ctx context.Context, docEntry int64) (*order.Order, error) {
	return r.getBy(ctx, "sap_doc_entry = ?", docEntry, "sapDocEntry", docEntry)
}

func (r *GormOrderRepository) getBy(
	ctx context.Context,
	condition string,
	value any,
	paramName string,
	paramValue any,
) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, condition, value).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(paramName, paramValue)
		}
		return nil, err
	}

	var items []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("id").
		Find(&items).Error; err != nil {
		return nil, err
	}

	var events []OrderEventDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Order("occurred_at asc").
		Find(&events).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, items, events)
}

func (r *GormOrderRepository) insertNewEvents(ctx context.Context, aggregate *order.Order) error {
	for _, e := range aggregate.NewEvents() {
		dto := eventFromDomain(e)
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			// the dedup index caught a concurrent duplicate of the same
			// (order, type, key) triple
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return errs.NewConcurrencyConflictError(aggregate.ID().String(), 1)
			}
			return err
		}
	}
	return nil
}
