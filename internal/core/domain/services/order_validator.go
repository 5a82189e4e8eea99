package services

import (
	"context"
	"errors"
	"fmt"

	"food/internal/core/domain/model/catalog"
	"food/internal/core/domain/model/kernel"
	"food/internal/core/domain/model/order"
	"food/internal/core/ports"
	"food/internal/pkg/errs"
)

// ProductCatalog resolves a product by id. A missing product is reported
// with an errs.ObjectNotFoundError; any other error is a lookup failure.
type ProductCatalog interface {
	Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error)
}

// CategoryCatalog resolves a category by id, with the same error contract
// as ProductCatalog.
type CategoryCatalog interface {
	Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error)
}

// OrderValidator is the domain service that checks a candidate order against
// the business rules and prices it. Checks run in a fixed order and stop at
// the first failure:
//
//  1. the order has at least one item
//  2. every item has quantity >= 1
//  3. a present customer tax-id resolves in the client directory
//  4. every item's product exists, is active, and belongs to an existing
//     active category
//  5. the total amount is the exact sum of quantity times product price
//
// The validator only reads from its collaborators; on success the order
// carries its computed total and is ready for persistence.
type OrderValidator struct {
	products   ProductCatalog
	categories CategoryCatalog
	clients    ports.ClientDirectory
}

// NewOrderValidator creates an OrderValidator over the given lookups.
func NewOrderValidator(
	products ProductCatalog,
	categories CategoryCatalog,
	clients ports.ClientDirectory,
) OrderValidator {
	return OrderValidator{
		products:   products,
		categories: categories,
		clients:    clients,
	}
}

// ValidateAndPrice runs the rule pipeline against the candidate order and,
// when every check passes, sets the order's total amount.
//
// Failures:
//   - business-rule violations: *order.ValidationError with the rule's message
//   - unknown customer tax-id: *ports.ClientNotFoundError
//   - collaborator failures (directory unreachable, storage errors):
//     propagated unchanged, never reinterpreted as "not found"
func (v OrderValidator) ValidateAndPrice(ctx context.Context, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	items := o.Items()
	if len(items) == 0 {
		return order.NewValidationError("Order must have at least one item.")
	}

	for _, item := range items {
		if item.Quantity() < 1 {
			return order.NewValidationError("Each item must have at least quantity 1.")
		}
	}

	if taxID := o.CustomerTaxID(); taxID != "" {
		if _, err := v.clients.GetClientByTaxID(ctx, taxID); err != nil {
			return err
		}
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		price, err := v.resolveItemPrice(ctx, item)
		if err != nil {
			return err
		}
		total = total.Add(price.MulQuantity(item.Quantity()))
	}

	o.SetTotalAmount(total)
	return nil
}

// resolveItemPrice resolves the item's product and category and returns the
// unit price, translating absence into the contract validation messages.
func (v OrderValidator) resolveItemPrice(ctx context.Context, item order.Item) (kernel.Money, error) {
	product, err := v.products.Get(ctx, item.ProductID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.Money{}, order.NewValidationError(
				fmt.Sprintf("Product with ID %s not found.", item.ProductID()))
		}
		return kernel.Money{}, err
	}

	if !product.IsActive() {
		return kernel.Money{}, order.NewValidationError(
			fmt.Sprintf("Product '%s' is not available.", product.Name()))
	}

	categoryID := product.CategoryID()
	if categoryID == nil {
		return kernel.Money{}, order.NewValidationError(
			fmt.Sprintf("Product '%s' does not have a category assigned.", product.Name()))
	}

	category, err := v.categories.Get(ctx, *categoryID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.Money{}, order.NewValidationError(
				fmt.Sprintf("Category for product '%s' not found.", product.Name()))
		}
		return kernel.Money{}, err
	}

	if !category.IsActive() {
		return kernel.Money{}, order.NewValidationError(
			fmt.Sprintf("Category '%s' is not active.", category.Name()))
	}

	return product.Price(), nil
}
