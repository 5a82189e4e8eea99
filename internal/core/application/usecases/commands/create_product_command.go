package commands

import (
	"errors"

	"food/internal/core/domain/model/kernel"
	"food/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand represents a request to add a product to the catalog.
// Name, price, and category rules are enforced by the catalog entity.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	name        string
	description string
	price       kernel.Money
	categoryID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to register a new product under
// the given category.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	categoryID kernel.UUID,
) (CreateProductCommand, error) {
	if err := errors.Join(
		productID.Validate(),
		categoryID.Validate(),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{
		productID:   productID,
		name:        name,
		description: description,
		price:       price,
		categoryID:  categoryID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier for the new product.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Description returns the optional product description.
func (c CreateProductCommand) Description() string {
	return c.description
}

// Price returns the product unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// CategoryID returns the identifier of the product's category.
func (c CreateProductCommand) CategoryID() kernel.UUID {
	return c.categoryID
}
