package ports

import "context"

// SapOrderLine is one row of an open external sales order.
type SapOrderLine struct {
	ItemCode string  `json:"itemCode"`
	Quantity float64 `json:"quantity"`
}

// SapOrder is an open sales order as reported by the external system.
type SapOrder struct {
	DocEntry   int64          `json:"docEntry"`
	DocNum     int64          `json:"docNum"`
	CardCode   string         `json:"cardCode"`
	DocStatus  string         `json:"docStatus"`
	UpdateDate string         `json:"updateDate"`
	UpdateTime string         `json:"updateTime"`
	Lines      []SapOrderLine `json:"lines"`
}

// SapOrderSource fetches open sales orders from the external gateway for
// reconciliation.
type SapOrderSource interface {
	FetchOpenOrders(ctx context.Context) ([]SapOrder, error)
}
