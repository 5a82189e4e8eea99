package order

import (
	"food/internal/core/domain/model/kernel"
)

// Item is a catalog product reference plus a requested quantity, owned by
// exactly one Order. Items have no lifecycle of their own.
//
// The quantity >= 1 rule is deliberately not enforced here: a candidate
// order may transiently hold a zero quantity until validation rejects it.
type Item struct {
	productID kernel.UUID
	quantity  int
}

// NewItem creates an Item for the given product. The product id must be
// valid; the quantity is checked later by the order validator.
func NewItem(productID kernel.UUID, quantity int) (Item, error) {
	if err := productID.Validate(); err != nil {
		return Item{}, err
	}

	return Item{
		productID: productID,
		quantity:  quantity,
	}, nil
}

// ProductID returns the referenced catalog product id.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns the requested quantity.
func (i Item) Quantity() int {
	return i.quantity
}
