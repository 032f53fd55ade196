// Package mirror holds read-mostly copies of external master data. Mirrors
// are replaced wholesale by bulk sync; the engine never mutates them through
// the order lifecycle.
package mirror

import "wms/internal/pkg/errs"

// Product mirrors one catalog item from the external system, keyed by SKU.
type Product struct {
	SKU             string
	Description     string
	EAN             string
	Category        string
	UnitOfMeasure   string
	IsActive        bool
	IsInventoryItem bool
	IsSalesItem     bool
	SapItemCode     string
	SapUpdateDate   string
}

// Validate checks the natural key.
func (p Product) Validate() error {
	if p.SKU == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	return nil
}

// InventoryStock mirrors on-hand figures for one SKU in one warehouse.
type InventoryStock struct {
	SKU           string
	WarehouseCode string
	OnHand        float64
	Committed     float64
	Ordered       float64
	SapUpdateDate string
}

// Validate checks the composite natural key.
func (s InventoryStock) Validate() error {
	if s.SKU == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	if s.WarehouseCode == "" {
		return errs.NewValueIsRequiredError("warehouseCode")
	}
	return nil
}

// Customer mirrors one business partner, keyed by card code.
type Customer struct {
	CardCode      string
	CardName      string
	CardType      string
	Phone         string
	Email         string
	Address       string
	City          string
	State         string
	IsActive      bool
	SapUpdateDate string
}

// Validate checks the natural key.
func (c Customer) Validate() error {
	if c.CardCode == "" {
		return errs.NewValueIsRequiredError("cardCode")
	}
	return nil
}
