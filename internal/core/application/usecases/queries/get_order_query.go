package queries

import (
	"errors"
	"time"

	"food/internal/core/domain/model/kernel"
	"food/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the full detail of one order, items included.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a detail query for the given order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemView is one order line in a detail response.
type OrderItemView struct {
	ProductID kernel.UUID
	Quantity  int
}

// GetOrderQueryResponse is the full detail of one order.
type GetOrderQueryResponse struct {
	ID            kernel.UUID
	Title         string
	Description   string
	Status        string
	CustomerTaxID string
	TotalAmount   kernel.Money
	ReceivedAt    *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Items         []OrderItemView
}
