// Package sapgw implements the external sales-order source against the SAP
// gateway's REST API.
package sapgw

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"wms/internal/core/ports"
)

const defaultTimeout = 30 * time.Second

// Client fetches open sales orders from the SAP gateway.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a gateway client. The API key is sent as a bearer token
// on every request; pass an empty key when the gateway is unauthenticated.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

type openOrdersResponse struct {
	Orders []sapOrderPayload `json:"orders"`
}

type sapOrderPayload struct {
	DocEntry      int64  `json:"DocEntry"`
	DocNum        int64  `json:"DocNum"`
	CardCode      string `json:"CardCode"`
	DocStatus     string `json:"DocStatus"`
	UpdateDate    string `json:"UpdateDate"`
	UpdateTime    string `json:"UpdateTime"`
	DocumentLines []struct {
		ItemCode string  `json:"ItemCode"`
		Quantity float64 `json:"Quantity"`
	} `json:"DocumentLines"`
}

// FetchOpenOrders retrieves the gateway's current set of open sales orders.
func (c *Client) FetchOpenOrders(ctx context.Context) ([]ports.SapOrder, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/sap/orders/open", nil)
	if err != nil {
		return nil, fmt.Errorf("build open orders request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch open orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch open orders: gateway returned %d", resp.StatusCode)
	}

	var payload openOrdersResponse
	if err = json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode open orders response: %w", err)
	}

	orders := make([]ports.SapOrder, 0, len(payload.Orders))
	for _, o := range payload.Orders {
		lines := make([]ports.SapOrderLine, 0, len(o.DocumentLines))
		for _, line := range o.DocumentLines {
			lines = append(lines, ports.SapOrderLine{
				ItemCode: line.ItemCode,
				Quantity: line.Quantity,
			})
		}
		orders = append(orders, ports.SapOrder{
			DocEntry:   o.DocEntry,
			DocNum:     o.DocNum,
			CardCode:   o.CardCode,
			DocStatus:  o.DocStatus,
			UpdateDate: o.UpdateDate,
			UpdateTime: o.UpdateTime,
			Lines:      lines,
		})
	}
	return orders, nil
}
