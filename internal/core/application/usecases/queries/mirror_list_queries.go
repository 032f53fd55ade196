package queries

import (
	"errors"

	"wms/internal/pkg/guard"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
	ErrListInventoryQueryIsNotConstructed = errors.New(
		"ListInventoryQuery must be created via NewListInventoryQuery constructor",
	)
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
)

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// ListProductsQuery retrieves a page of catalog mirrors. The search term
// matches partially against SKU and description.
type ListProductsQuery struct {
	search string
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListProductsQuery creates a catalog listing query.
func NewListProductsQuery(search string, limit, offset int) (ListProductsQuery, error) {
	limit, offset = clampPage(limit, offset)
	return ListProductsQuery{
		search: search,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

// Search returns the optional partial SKU/description filter.
func (q ListProductsQuery) Search() string { return q.search }

// Limit returns the clamped page size.
func (q ListProductsQuery) Limit() int { return q.limit }

// Offset returns the page offset.
func (q ListProductsQuery) Offset() int { return q.offset }

// ListInventoryQuery retrieves a page of inventory mirrors, optionally
// narrowed to one SKU or one warehouse.
type ListInventoryQuery struct {
	sku           string
	warehouseCode string
	limit         int
	offset        int

	guard guard.ConstructorGuard
}

// NewListInventoryQuery creates an inventory listing query.
func NewListInventoryQuery(sku, warehouseCode string, limit, offset int) (ListInventoryQuery, error) {
	limit, offset = clampPage(limit, offset)
	return ListInventoryQuery{
		sku:           sku,
		warehouseCode: warehouseCode,
		limit:         limit,
		offset:        offset,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListInventoryQuery) Validate() error {
	return q.guard.Validate(ErrListInventoryQueryIsNotConstructed)
}

// SKU returns the optional exact SKU filter.
func (q ListInventoryQuery) SKU() string { return q.sku }

// WarehouseCode returns the optional exact warehouse filter.
func (q ListInventoryQuery) WarehouseCode() string { return q.warehouseCode }

// Limit returns the clamped page size.
func (q ListInventoryQuery) Limit() int { return q.limit }

// Offset returns the page offset.
func (q ListInventoryQuery) Offset() int { return q.offset }

// ListCustomersQuery retrieves a page of business-partner mirrors. The search
// term matches partially against card code and card name.
type ListCustomersQuery struct {
	search string
	limit  int
	offset int

	guard guard.ConstructorGuard
}

// NewListCustomersQuery creates a customer listing query.
func NewListCustomersQuery(search string, limit, offset int) (ListCustomersQuery, error) {
	limit, offset = clampPage(limit, offset)
	return ListCustomersQuery{
		search: search,
		limit:  limit,
		offset: offset,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

// Search returns the optional partial card-code/card-name filter.
func (q ListCustomersQuery) Search() string { return q.search }

// Limit returns the clamped page size.
func (q ListCustomersQuery) Limit() int { return q.limit }

// Offset returns the page offset.
func (q ListCustomersQuery) Offset() int { return q.offset }

// ProductResponse is the read-side projection of a catalog mirror.
type ProductResponse struct {
	SKU             string `json:"sku"`
	Description     string `json:"description"`
	EAN             string `json:"ean,omitempty"`
	Category        string `json:"category,omitempty"`
	UnitOfMeasure   string `json:"unitOfMeasure,omitempty"`
	IsActive        bool   `json:"isActive"`
	IsInventoryItem bool   `json:"isInventoryItem"`
	IsSalesItem     bool   `json:"isSalesItem"`
	SapItemCode     string `json:"sapItemCode,omitempty"`
	SapUpdateDate   string `json:"sapUpdateDate,omitempty"`
}

// ListProductsResponse is one page of catalog mirrors.
type ListProductsResponse struct {
	Items  []ProductResponse `json:"items"`
	Total  int64             `json:"total"`
	Limit  int               `json:"limit"`
	Offset int               `json:"offset"`
}

// InventoryStockResponse is the read-side projection of an inventory mirror.
type InventoryStockResponse struct {
	SKU           string  `json:"sku"`
	WarehouseCode string  `json:"warehouseCode"`
	OnHand        float64 `json:"onHand"`
	Committed     float64 `json:"committed"`
	Ordered       float64 `json:"ordered"`
	Available     float64 `json:"available"`
	SapUpdateDate string  `json:"sapUpdateDate,omitempty"`
}

// ListInventoryResponse is one page of inventory mirrors.
type ListInventoryResponse struct {
	Items  []InventoryStockResponse `json:"items"`
	Total  int64                    `json:"total"`
	Limit  int                      `json:"limit"`
	Offset int                      `json:"offset"`
}

// CustomerResponse is the read-side projection of a business-partner mirror.
type CustomerResponse struct {
	CardCode      string `json:"cardCode"`
	CardName      string `json:"cardName"`
	CardType      string `json:"cardType,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	IsActive      bool   `json:"isActive"`
	SapUpdateDate string `json:"sapUpdateDate,omitempty"`
}

// ListCustomersResponse is one page of business-partner mirrors.
type ListCustomersResponse struct {
	Items  []CustomerResponse `json:"items"`
	Total  int64              `json:"total"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}
