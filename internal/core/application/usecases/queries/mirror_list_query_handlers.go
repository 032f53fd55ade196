package queries

import (
	"context"

	"gorm.io/gorm"
)

// MirrorListQueryHandler serves read access to the master-data mirrors.
// Mirrors have no domain behavior, so one handler covers all three tables.
type MirrorListQueryHandler struct {
	db *gorm.DB
}

// NewMirrorListQueryHandler creates a handler for mirror listings.
func NewMirrorListQueryHandler(db *gorm.DB) MirrorListQueryHandler {
	return MirrorListQueryHandler{db: db}
}

// HandleProducts executes a catalog listing, ordered by SKU.
func (h MirrorListQueryHandler) HandleProducts(ctx context.Context, query ListProductsQuery) (ListProductsResponse, error) {
	if err := query.Validate(); err != nil {
		return ListProductsResponse{}, err
	}

	where := "1 = 1"
	args := make([]any, 0, 2)
	if query.Search() != "" {
		where += " AND (sku ILIKE ? OR description ILIKE ?)"
		term := "%" + query.Search() + "%"
		args = append(args, term, term)
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM products WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListProductsResponse{}, err
	}

	pageArgs := append(append([]any(nil), args...), query.Limit(), query.Offset())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sku,
			description,
			ean,
			category,
			unit_of_measure,
			is_active,
			is_inventory_item,
			is_sales_item,
			sap_item_code,
			sap_update_date
		FROM products
		WHERE `+where+`
		ORDER BY sku
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListProductsResponse{}, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var p ProductResponse
		if err = rows.Scan(
			&p.SKU,
			&p.Description,
			&p.EAN,
			&p.Category,
			&p.UnitOfMeasure,
			&p.IsActive,
			&p.IsInventoryItem,
			&p.IsSalesItem,
			&p.SapItemCode,
			&p.SapUpdateDate,
		); err != nil {
			return ListProductsResponse{}, err
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return ListProductsResponse{}, err
	}

	return ListProductsResponse{
		Items:  products,
		Total:  total,
		Limit:  query.Limit(),
		Offset: query.Offset(),
	}, nil
}

// HandleInventory executes an inventory listing, ordered by SKU then
// warehouse. Available is derived as on-hand minus committed.
func (h MirrorListQueryHandler) HandleInventory(ctx context.Context, query ListInventoryQuery) (ListInventoryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListInventoryResponse{}, err
	}

	where := "1 = 1"
	args := make([]any, 0, 2)
	if query.SKU() != "" {
		where += " AND sku = ?"
		args = append(args, query.SKU())
	}
	if query.WarehouseCode() != "" {
		where += " AND warehouse_code = ?"
		args = append(args, query.WarehouseCode())
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM inventory_stocks WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListInventoryResponse{}, err
	}

	pageArgs := append(append([]any(nil), args...), query.Limit(), query.Offset())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			sku,
			warehouse_code,
			on_hand,
			committed,
			ordered,
			sap_update_date
		FROM inventory_stocks
		WHERE `+where+`
		ORDER BY sku, warehouse_code
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListInventoryResponse{}, err
	}
	defer rows.Close()

	stocks := make([]InventoryStockResponse, 0)
	for rows.Next() {
		var s InventoryStockResponse
		if err = rows.Scan(
			&s.SKU,
			&s.WarehouseCode,
			&s.OnHand,
			&s.Committed,
			&s.Ordered,
			&s.SapUpdateDate,
		); err != nil {
			return ListInventoryResponse{}, err
		}
		s.Available = s.OnHand - s.Committed
		stocks = append(stocks, s)
	}
	if err = rows.Err(); err != nil {
		return ListInventoryResponse{}, err
	}

	return ListInventoryResponse{
		Items:  stocks,
		Total:  total,
		Limit:  query.Limit(),
		Offset: query.Offset(),
	}, nil
}

// HandleCustomers executes a business-partner listing, ordered by card code.
func (h MirrorListQueryHandler) HandleCustomers(ctx context.Context, query ListCustomersQuery) (ListCustomersResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCustomersResponse{}, err
	}

	where := "1 = 1"
	args := make([]any, 0, 2)
	if query.Search() != "" {
		where += " AND (card_code ILIKE ? OR card_name ILIKE ?)"
		term := "%" + query.Search() + "%"
		args = append(args, term, term)
	}

	var total int64
	if err := h.db.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM customers WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		return ListCustomersResponse{}, err
	}

	pageArgs := append(append([]any(nil), args...), query.Limit(), query.Offset())
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			card_code,
			card_name,
			card_type,
			phone,
			email,
			address,
			city,
			state,
			is_active,
			sap_update_date
		FROM customers
		WHERE `+where+`
		ORDER BY card_code
		LIMIT ? OFFSET ?
	`, pageArgs...).Rows()
	if err != nil {
		return ListCustomersResponse{}, err
	}
	defer rows.Close()

	customers := make([]CustomerResponse, 0)
	for rows.Next() {
		var c CustomerResponse
		if err = rows.Scan(
			&c.CardCode,
			&c.CardName,
			&c.CardType,
			&c.Phone,
			&c.Email,
			&c.Address,
			&c.City,
			&c.State,
			&c.IsActive,
			&c.SapUpdateDate,
		); err != nil {
			return ListCustomersResponse{}, err
		}
		customers = append(customers, c)
	}
	if err = rows.Err(); err != nil {
		return ListCustomersResponse{}, err
	}

	return ListCustomersResponse{
		Items:  customers,
		Total:  total,
		Limit:  query.Limit(),
		Offset: query.Offset(),
	}, nil
}
