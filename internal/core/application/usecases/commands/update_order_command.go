package commands

import (
	"errors"

	"food/internal/core/domain/model/kernel"
	"food/internal/pkg/guard"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand represents a full update of an existing order: details
// and items together. The updated order goes back through the validation
// pipeline and is repriced.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	title         string
	description   string
	customerTaxID string
	items         []OrderItemInput

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to replace an order's details and
// items. Validates that the order ID is valid and the title is not empty.
func NewUpdateOrderCommand(
	orderID kernel.UUID,
	title string,
	description string,
	customerTaxID string,
	items []OrderItemInput,
) (UpdateOrderCommand, error) {
	orderCommand := UpdateOrderCommand{
		description:   description,
		customerTaxID: customerTaxID,
		items:         items,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setTitle(title),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being updated.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Title returns the new order title.
func (c UpdateOrderCommand) Title() string {
	return c.title
}

// Description returns the new order description.
func (c UpdateOrderCommand) Description() string {
	return c.description
}

// CustomerTaxID returns the new customer CPF, or "" for anonymous orders.
func (c UpdateOrderCommand) CustomerTaxID() string {
	return c.customerTaxID
}

// Items returns the replacement order lines.
func (c UpdateOrderCommand) Items() []OrderItemInput {
	return c.items
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}
