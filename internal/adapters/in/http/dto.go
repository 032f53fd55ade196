package http

import "time"

// ErrorResponse is the uniform error body for all endpoints.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

// ItemRequest is one order line on the wire.
type ItemRequest struct {
	SKU      string  `json:"sku"`
	Quantity float64 `json:"quantity"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	CustomerID      string        `json:"customerId"`
	ExternalOrderID string        `json:"externalOrderId,omitempty"`
	Items           []ItemRequest `json:"items"`
}

// ActorRequest identifies who posts a lifecycle event.
type ActorRequest struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// OrderEventRequest is the body of POST /orders/{orderId}/events.
type OrderEventRequest struct {
	Type       string       `json:"type"`
	Actor      ActorRequest `json:"actor"`
	OccurredAt *time.Time   `json:"occurredAt,omitempty"`
}

// SapOrderLineRequest is one document line of an external sales order.
type SapOrderLineRequest struct {
	ItemCode string  `json:"ItemCode"`
	Quantity float64 `json:"Quantity"`
}

// SapOrderRequest mirrors the external system's sales-order shape; field
// casing follows the gateway payload, not this API's conventions.
type SapOrderRequest struct {
	DocEntry      int64                 `json:"DocEntry"`
	DocNum        int64                 `json:"DocNum"`
	CardCode      string                `json:"CardCode"`
	DocStatus     string                `json:"DocStatus"`
	UpdateDate    string                `json:"UpdateDate"`
	UpdateTime    string                `json:"UpdateTime"`
	DocumentLines []SapOrderLineRequest `json:"DocumentLines"`
}

// SapOrdersSyncRequest is the body of POST /internal/sap/orders.
type SapOrdersSyncRequest struct {
	Orders []SapOrderRequest `json:"orders"`
}

// BulkProductRequest is one catalog row of POST /v1/catalog/items/bulk.
type BulkProductRequest struct {
	SKU             string `json:"sku"`
	Description     string `json:"description"`
	EAN             string `json:"ean,omitempty"`
	Category        string `json:"category,omitempty"`
	UnitOfMeasure   string `json:"unit_of_measure"`
	IsActive        *bool  `json:"is_active,omitempty"`
	IsInventoryItem *bool  `json:"is_inventory_item,omitempty"`
	IsSalesItem     *bool  `json:"is_sales_item,omitempty"`
	SapItemCode     string `json:"sap_item_code,omitempty"`
	SapUpdateDate   string `json:"sap_update_date,omitempty"`
}

// BulkProductsRequest is the body of POST /v1/catalog/items/bulk.
type BulkProductsRequest struct {
	Items []BulkProductRequest `json:"items"`
}

// BulkInventoryRequest is one stock row of POST /v1/inventory/bulk.
type BulkInventoryRequest struct {
	SKU           string  `json:"sku"`
	WarehouseCode string  `json:"warehouse_code"`
	OnHand        float64 `json:"on_hand"`
	Committed     float64 `json:"committed"`
	Ordered       float64 `json:"ordered"`
	SapUpdateDate string  `json:"sap_update_date,omitempty"`
}

// BulkInventoriesRequest is the body of POST /v1/inventory/bulk.
type BulkInventoriesRequest struct {
	Items []BulkInventoryRequest `json:"items"`
}

// BulkCustomerRequest is one partner row of POST /v1/customers/bulk.
type BulkCustomerRequest struct {
	CardCode      string `json:"card_code"`
	CardName      string `json:"card_name"`
	CardType      string `json:"card_type,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	Address       string `json:"address,omitempty"`
	City          string `json:"city,omitempty"`
	State         string `json:"state,omitempty"`
	IsActive      *bool  `json:"is_active,omitempty"`
	SapUpdateDate string `json:"sap_update_date,omitempty"`
}

// BulkCustomersRequest is the body of POST /v1/customers/bulk.
type BulkCustomersRequest struct {
	Items []BulkCustomerRequest `json:"items"`
}

// BulkUpsertResponse reports the outcome of one bulk mirror sync.
type BulkUpsertResponse struct {
	Upserted int `json:"upserted"`
	Created  int `json:"created"`
	Updated  int `json:"updated"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
