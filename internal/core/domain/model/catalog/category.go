package catalog

import (
	"errors"

	"food/internal/core/domain/model/kernel"
)

var (
	// ErrCategoryIsNotConstructed is returned when a Category was not
	// created through NewCategory or RestoreCategory.
	ErrCategoryIsNotConstructed = errors.New("Category must be created via NewCategory or RestoreCategory")

	// ErrCategoryNameIsRequired is returned for a missing category name.
	ErrCategoryNameIsRequired = errors.New("Category name cannot be empty")
)

// Category groups catalog products, e.g. "Lanches" or "Bebidas". Inactive
// categories keep their products but block new orders for them.
type Category struct {
	id     kernel.UUID
	name   string
	active bool

	isConstructed bool
}

// NewCategory creates an active Category with the given name.
func NewCategory(id kernel.UUID, name string) (*Category, error) {
	c := &Category{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCategory reconstructs a Category from persistence.
func RestoreCategory(id kernel.UUID, name string, active bool) (*Category, error) {
	c := &Category{
		active:        active,
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Category was created through a factory method.
func (c *Category) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCategoryIsNotConstructed
	}
	return nil
}

// ID returns the category's unique identifier.
func (c *Category) ID() kernel.UUID {
	return c.id
}

// Name returns the category name.
func (c *Category) Name() string {
	return c.name
}

// IsActive reports whether products in the category can be ordered.
func (c *Category) IsActive() bool {
	return c.active
}

// Deactivate blocks new orders for the category's products.
func (c *Category) Deactivate() {
	c.active = false
}

// Activate re-enables ordering for the category's products.
func (c *Category) Activate() {
	c.active = true
}

// Rename changes the category name.
func (c *Category) Rename(name string) error {
	return c.setName(name)
}

func (c *Category) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Category) setName(name string) error {
	if name == "" {
		return ErrCategoryNameIsRequired
	}
	c.name = name
	return nil
}
