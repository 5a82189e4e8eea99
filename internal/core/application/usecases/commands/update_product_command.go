package commands

import (
	"errors"

	"food/internal/core/domain/model/kernel"
	"food/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to change a product's details.
// Name, price, and category rules are enforced by the catalog entity.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Money
	categoryID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update an existing product.
func NewUpdateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	categoryID kernel.UUID,
) (UpdateProductCommand, error) {
	if err := errors.Join(
		productID.Validate(),
		categoryID.Validate(),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{
		productID:   productID,
		name:        name,
		description: description,
		price:       price,
		categoryID:  categoryID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being updated.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new product description.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// Price returns the new product unit price.
func (c UpdateProductCommand) Price() kernel.Money {
	return c.price
}

// CategoryID returns the identifier of the product's new category.
func (c UpdateProductCommand) CategoryID() kernel.UUID {
	return c.categoryID
}
