package ports

import (
	"context"

	"food/internal/core/domain/model/catalog"
	"food/internal/core/domain/model/kernel"
)

// ProductRepository is the persistence contract for catalog products.
// Get reports a missing product with an errs.ObjectNotFoundError so callers
// can distinguish absence from storage failures.
type ProductRepository interface {
	// Add persists a new product.
	Add(ctx context.Context, product *catalog.Product) error

	// Update persists changes to an existing product.
	Update(ctx context.Context, product *catalog.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)

	// Delete removes a product from the catalog.
	Delete(ctx context.Context, id kernel.UUID) error
}

// CategoryRepository is the persistence contract for catalog categories.
type CategoryRepository interface {
	// Add persists a new category.
	Add(ctx context.Context, category *catalog.Category) error

	// Update persists changes to an existing category.
	Update(ctx context.Context, category *catalog.Category) error

	// Get retrieves a category by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error)

	// GetByName retrieves a category by its exact name.
	GetByName(ctx context.Context, name string) (*catalog.Category, error)
}
