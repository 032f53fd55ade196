package queries

import (
	"errors"

	"wms/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// ListOrdersQuery retrieves a page of orders, newest first. Both filters are
// optional; the external order id matches partially because operators search
// by document number fragments.
type ListOrdersQuery struct {
	status          string
	externalOrderID string
	limit           int
	offset          int

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a listing query. A non-positive limit falls back
// to the default page size; anything above the cap is clamped. A negative
// offset is treated as zero.
func NewListOrdersQuery(status, externalOrderID string, limit, offset int) (ListOrdersQuery, error) {
	limit, offset = clampPage(limit, offset)

	return ListOrdersQuery{
		status:          status,
		externalOrderID: externalOrderID,
		limit:           limit,
		offset:          offset,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the optional status filter.
func (q ListOrdersQuery) Status() string { return q.status }

// ExternalOrderID returns the optional partial external-id filter.
func (q ListOrdersQuery) ExternalOrderID() string { return q.externalOrderID }

// Limit returns the clamped page size.
func (q ListOrdersQuery) Limit() int { return q.limit }

// Offset returns the page offset.
func (q ListOrdersQuery) Offset() int { return q.offset }

// ListOrdersResponse is one page of order projections plus the total number
// of orders matching the filters.
type ListOrdersResponse struct {
	Items  []OrderResponse `json:"items"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}
