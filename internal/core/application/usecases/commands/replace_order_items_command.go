package commands

import (
	"errors"

	"food/internal/core/domain/model/kernel"
	"food/internal/pkg/guard"
)

var ErrReplaceOrderItemsCommandIsNotConstructed = errors.New(
	"ReplaceOrderItemsCommand must be created via NewReplaceOrderItemsCommand constructor",
)

// ReplaceOrderItemsCommand represents a request to swap an order's items for
// a new set. The order is repriced from the new items.
type ReplaceOrderItemsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	items   []OrderItemInput

	guard guard.ConstructorGuard
}

// NewReplaceOrderItemsCommand creates a command to replace an order's items.
func NewReplaceOrderItemsCommand(
	orderID kernel.UUID,
	items []OrderItemInput,
) (ReplaceOrderItemsCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ReplaceOrderItemsCommand{}, err
	}

	return ReplaceOrderItemsCommand{
		orderID: orderID,
		items:   items,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReplaceOrderItemsCommand) Validate() error {
	return c.guard.Validate(ErrReplaceOrderItemsCommandIsNotConstructed)
}

// OrderID returns the identifier of the order whose items are replaced.
func (c ReplaceOrderItemsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Items returns the replacement order lines.
func (c ReplaceOrderItemsCommand) Items() []OrderItemInput {
	return c.items
}
