// Package mirrorrepo persists external master-data mirrors.
package mirrorrepo

import (
	"context"
	"errors"
	"time"

	"wms/internal/core/domain/model/mirror"
	"wms/internal/core/ports"

	"gorm.io/gorm"
)

// ProductDTO represents the database structure for catalog mirrors.
type ProductDTO struct {
	SKU             string `gorm:"primaryKey"`
	Description     string
	EAN             string
	Category        string
	UnitOfMeasure   string
	IsActive        bool
	IsInventoryItem bool
	IsSalesItem     bool
	SapItemCode     string
	SapUpdateDate   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the database table name for product mirrors.
func (ProductDTO) TableName() string {
	return "products"
}

// InventoryStockDTO represents the database structure for inventory mirrors.
type InventoryStockDTO struct {
	SKU           string `gorm:"primaryKey"`
	WarehouseCode string `gorm:"primaryKey"`
	OnHand        float64
	Committed     float64
	Ordered       float64
	SapUpdateDate string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for inventory mirrors.
func (InventoryStockDTO) TableName() string {
	return "inventory_stocks"
}

// CustomerDTO represents the database structure for business-partner mirrors.
type CustomerDTO struct {
	CardCode      string `gorm:"primaryKey"`
	CardName      string
	CardType      string
	Phone         string
	Email         string
	Address       string
	City          string
	State         string
	IsActive      bool
	SapUpdateDate string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName specifies the database table name for customer mirrors.
func (CustomerDTO) TableName() string {
	return "customers"
}

// GormMirrorRepository implements MirrorRepository using GORM. Upserts run
// as lookup-then-write inside the caller's transaction, mirroring rows on
// their natural key and counting inserts and refreshes separately.
type GormMirrorRepository struct {
	db *gorm.DB
}

// NewGormMirrorRepository creates a new GORM mirror repository.
func NewGormMirrorRepository(db *gorm.DB) *GormMirrorRepository {
	return &GormMirrorRepository{db: db}
}

// UpsertProducts inserts or refreshes catalog mirrors by SKU.
func (r *GormMirrorRepository) UpsertProducts(ctx context.Context, products []mirror.Product) (ports.UpsertCounts, error) {
	counts := ports.UpsertCounts{}

	for _, p := range products {
		now := time.Now().UTC()

		var existing ProductDTO
		err := r.db.WithContext(ctx).First(&existing, "sku = ?", p.SKU).Error
		switch {
		case err == nil:
			err = r.db.WithContext(ctx).
				Model(&ProductDTO{}).
				Where("sku = ?", p.SKU).
				Updates(map[string]any{
					"description":       p.Description,
					"ean":               p.EAN,
					"category":          p.Category,
					"unit_of_measure":   p.UnitOfMeasure,
					"is_active":         p.IsActive,
					"is_inventory_item": p.IsInventoryItem,
					"is_sales_item":     p.IsSalesItem,
					"sap_item_code":     p.SapItemCode,
					"sap_update_date":   p.SapUpdateDate,
					"updated_at":        now,
				}).Error
			if err != nil {
				return ports.UpsertCounts{}, err
			}
			counts.Updated++

		case errors.Is(err, gorm.ErrRecordNotFound):
			dto := ProductDTO{
				SKU:             p.SKU,
				Description:     p.Description,
				EAN:             p.EAN,
				Category:        p.Category,
				UnitOfMeasure:   p.UnitOfMeasure,
				IsActive:        p.IsActive,
				IsInventoryItem: p.IsInventoryItem,
				IsSalesItem:     p.IsSalesItem,
				SapItemCode:     p.SapItemCode,
				SapUpdateDate:   p.SapUpdateDate,
				CreatedAt:       now,
				UpdatedAt:       now,
			}
			if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
				return ports.UpsertCounts{}, err
			}
			counts.Created++

		default:
			return ports.UpsertCounts{}, err
		}
	}
	return counts, nil
}

// UpsertInventory inserts or refreshes inventory mirrors by (SKU, warehouse).
func (r *GormMirrorRepository) UpsertInventory(ctx context.Context, stocks []mirror.InventoryStock) (ports.UpsertCounts, error) {
	counts := ports.UpsertCounts{}

	for _, s := range stocks {
		now := time.Now().UTC()

		var existing InventoryStockDTO
		err := r.db.WithContext(ctx).
			First(&existing, "sku = ? AND warehouse_code = ?", s.SKU, s.WarehouseCode).Error
		switch {
		case err == nil:
			err = r.db.WithContext(ctx).
				Model(&InventoryStockDTO{}).
				Where("sku = ? AND warehouse_code = ?", s.SKU, s.WarehouseCode).
				Updates(map[string]any{
					"on_hand":         s.OnHand,
					"committed":       s.Committed,
					"ordered":         s.Ordered,
					"sap_update_date": s.SapUpdateDate,
					"updated_at":      now,
				}).Error
			if err != nil {
				return ports.UpsertCounts{}, err
			}
			counts.Updated++

		case errors.Is(err, gorm.ErrRecordNotFound):
			dto := InventoryStockDTO{
				SKU:           s.SKU,
				WarehouseCode: s.WarehouseCode,
				OnHand:        s.OnHand,
				Committed:     s.Committed,
				Ordered:       s.Ordered,
				SapUpdateDate: s.SapUpdateDate,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
				return ports.UpsertCounts{}, err
			}
			counts.Created++

		default:
			return ports.UpsertCounts{}, err
		}
	}
	return counts, nil
}

// UpsertCustomers inserts or refreshes business-partner mirrors by card code.
func (r *GormMirrorRepository) UpsertCustomers(ctx context.Context, customers []mirror.Customer) (ports.UpsertCounts, error) {
	counts := ports.UpsertCounts{}

	for _, c := range customers {
		now := time.Now().UTC()

		var existing CustomerDTO
		err := r.db.WithContext(ctx).First(&existing, "card_code = ?", c.CardCode).Error
		switch {
		case err == nil:
			err = r.db.WithContext(ctx).
				Model(&CustomerDTO{}).
				Where("card_code = ?", c.CardCode).
				Updates(map[string]any{
					"card_name":       c.CardName,
					"card_type":       c.CardType,
					"phone":           c.Phone,
					"email":           c.Email,
					"address":         c.Address,
					"city":            c.City,
					"state":           c.State,
					"is_active":       c.IsActive,
					"sap_update_date": c.SapUpdateDate,
					"updated_at":      now,
				}).Error
			if err != nil {
				return ports.UpsertCounts{}, err
			}
			counts.Updated++

		case errors.Is(err, gorm.ErrRecordNotFound):
			dto := CustomerDTO{
				CardCode:      c.CardCode,
				CardName:      c.CardName,
				CardType:      c.CardType,
				Phone:         c.Phone,
				Email:         c.Email,
				Address:       c.Address,
				City:          c.City,
				State:         c.State,
				IsActive:      c.IsActive,
				SapUpdateDate: c.SapUpdateDate,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
				return ports.UpsertCounts{}, err
			}
			counts.Created++

		default:
			return ports.UpsertCounts{}, err
		}
	}
	return counts, nil
}
