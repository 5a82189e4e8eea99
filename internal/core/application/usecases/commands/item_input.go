package commands

import (
	"food/internal/core/domain/model/kernel"
	"food/internal/core/domain/model/order"
)

// OrderItemInput carries one requested order line as received from the
// transport layer. Quantity bounds are a business rule checked by the
// order validator, not here.
type OrderItemInput struct {
	ProductID kernel.UUID
	Quantity  int
}

// domainItems converts the requested lines into domain items. Fails only on
// structurally invalid input, such as a zero product id.
func domainItems(inputs []OrderItemInput) ([]order.Item, error) {
	items := make([]order.Item, 0, len(inputs))
	for _, input := range inputs {
		item, err := order.NewItem(input.ProductID, input.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}
