// Package ports defines the contracts between the core and its external
// collaborators: persistence, the catalog, and the client directory.
// These interfaces establish dependency inversion and keep the core testable.
package ports

import (
	"context"

	"food/internal/core/domain/model/kernel"
	"food/internal/core/domain/model/order"
)

// OrderRepository is the persistence gateway for order aggregates. It deals
// in domain objects; storage mapping is an adapter concern. Read-modify-write
// consistency per order id is the adapter's responsibility.
type OrderRepository interface {
	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier, including its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// Delete removes an order and its items.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAll retrieves one page of orders. page is zero-based.
	// Returns the page and the total number of orders.
	GetAll(ctx context.Context, page, size int) ([]*order.Order, int64, error)

	// GetAllByStatus retrieves one page of orders in any of the given
	// statuses. Used for kitchen monitor views and the preparation watch.
	GetAllByStatus(ctx context.Context, statuses []order.Status, page, size int) ([]*order.Order, int64, error)
}
