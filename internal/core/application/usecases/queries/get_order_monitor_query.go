package queries

import (
	"errors"
	"time"

	"food/internal/core/domain/model/kernel"
	"food/internal/pkg/guard"
)

var ErrGetOrderMonitorQueryIsNotConstructed = errors.New(
	"GetOrderMonitorQuery must be created via NewGetOrderMonitorQuery constructor",
)

// GetOrderMonitorQuery retrieves the kitchen monitor view of one order:
// its current status plus the remaining preparation time message.
type GetOrderMonitorQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderMonitorQuery creates a monitor query for the given order.
func NewGetOrderMonitorQuery(orderID kernel.UUID) (GetOrderMonitorQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderMonitorQuery{}, err
	}

	return GetOrderMonitorQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderMonitorQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderMonitorQueryIsNotConstructed)
}

// OrderID returns the identifier of the order being monitored.
func (q GetOrderMonitorQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderMonitorQueryResponse is the kitchen monitor view of one order.
// RemainingTime is empty when the order has not entered the kitchen
// workflow yet.
type GetOrderMonitorQueryResponse struct {
	ID            kernel.UUID
	Title         string
	Status        string
	TotalAmount   kernel.Money
	ReceivedAt    *time.Time
	RemainingTime string
}
