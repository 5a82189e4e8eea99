package commands

import (
	"errors"

	"food/internal/core/domain/model/kernel"
	"food/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand represents a request to add a product category.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	categoryID kernel.UUID
	name       string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand creates a command to register a new category.
// The name rule is enforced by the catalog entity.
func NewCreateCategoryCommand(categoryID kernel.UUID, name string) (CreateCategoryCommand, error) {
	if err := categoryID.Validate(); err != nil {
		return CreateCategoryCommand{}, err
	}

	return CreateCategoryCommand{
		categoryID: categoryID,
		name:       name,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// CategoryID returns the identifier for the new category.
func (c CreateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

// Name returns the category name.
func (c CreateCategoryCommand) Name() string {
	return c.name
}
