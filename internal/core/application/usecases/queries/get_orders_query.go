// Package queries contains read-only operations over the order store.
// Implements the query side of the CQRS architecture: handlers read the
// database directly and return plain response structures, bypassing the
// domain aggregates.
package queries

import (
	"errors"
	"time"

	"food/internal/core/domain/model/kernel"
	"food/internal/core/domain/model/order"
	"food/internal/pkg/errs"
	"food/internal/pkg/guard"
)

const maxPageSize = 100

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves one page of orders, optionally narrowed to a
// single status.
//
// Example:
//
//	query, err := NewGetOrdersQuery(0, 20, "IN_PREPARATION")
//	if err != nil {
//	    return fmt.Errorf("invalid listing request: %w", err)
//	}
//
//	page, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	fmt.Printf("%d of %d orders\n", len(page.Orders), page.Total)
type GetOrdersQuery struct {
	page   int
	size   int
	status order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for one page of orders. page is
// zero-based; statusFilter is either empty or one of the known status
// strings, such as "SENT" or "IN_PREPARATION".
func NewGetOrdersQuery(page, size int, statusFilter string) (GetOrdersQuery, error) {
	if page < 0 {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("page", page, 0, nil)
	}
	if size < 1 || size > maxPageSize {
		return GetOrdersQuery{}, errs.NewValueIsOutOfRangeError("size", size, 1, maxPageSize)
	}

	status := order.Unknown
	if statusFilter != "" {
		parsed, err := order.StatusFromString(statusFilter)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		status = parsed
	}

	return GetOrdersQuery{
		page:   page,
		size:   size,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Page returns the zero-based page index.
func (q GetOrdersQuery) Page() int {
	return q.page
}

// Size returns the page size.
func (q GetOrdersQuery) Size() int {
	return q.size
}

// StatusFilter returns the requested status filter. The second return value
// is false when no filter was requested.
func (q GetOrdersQuery) StatusFilter() (order.Status, bool) {
	return q.status, q.status != order.Unknown
}

// OrderSummary is one order row in a listing response.
type OrderSummary struct {
	ID            kernel.UUID
	Title         string
	Description   string
	Status        string
	CustomerTaxID string
	TotalAmount   kernel.Money
	ReceivedAt    *time.Time
	CreatedAt     time.Time
}

// GetOrdersQueryResponse is one page of orders plus paging metadata.
type GetOrdersQueryResponse struct {
	Orders []OrderSummary
	Page   int
	Size   int
	Total  int64
}
