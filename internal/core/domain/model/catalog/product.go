package catalog

import (
	"errors"

	"food/internal/core/domain/model/kernel"
)

var (
	// ErrProductIsNotConstructed is returned when a Product was not created
	// through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct or RestoreProduct")

	// ErrProductNameIsRequired is returned for a missing product name.
	ErrProductNameIsRequired = errors.New("Product name cannot be empty")

	// ErrProductPriceIsInvalid is returned for a missing or zero price.
	ErrProductPriceIsInvalid = errors.New("Product price cannot be empty or zero")

	// ErrProductCategoryIsRequired is returned for a missing category.
	ErrProductCategoryIsRequired = errors.New("Product category cannot be empty")
)

// Product is a catalog entry orders reference through their items.
// A product carries an active flag; inactive products stay in the catalog
// but cannot be ordered. The category reference is optional at the model
// level — the order validator rejects uncategorized products at order time.
type Product struct {
	id          kernel.UUID
	name        string
	description string
	price       kernel.Money
	active      bool
	categoryID  *kernel.UUID

	isConstructed bool
}

// NewProduct creates an active Product. Name and a positive price are
// required; the category is mandatory for new products, matching the
// catalog maintenance rules.
func NewProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	categoryID kernel.UUID,
) (*Product, error) {
	p := &Product{
		description:   description,
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setCategoryID(categoryID),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct reconstructs a Product from persistence, including legacy
// rows without a category.
func RestoreProduct(
	id kernel.UUID,
	name string,
	description string,
	price kernel.Money,
	active bool,
	categoryID *kernel.UUID,
) (*Product, error) {
	p := &Product{
		description:   description,
		active:        active,
		categoryID:    categoryID,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created through a factory method.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the product name.
func (p *Product) Name() string {
	return p.name
}

// Description returns the optional product description.
func (p *Product) Description() string {
	return p.description
}

// Price returns the unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// IsActive reports whether the product can currently be ordered.
func (p *Product) IsActive() bool {
	return p.active
}

// CategoryID returns the category reference, or nil when unassigned.
func (p *Product) CategoryID() *kernel.UUID {
	return p.categoryID
}

// Deactivate removes the product from sale without deleting it.
func (p *Product) Deactivate() {
	p.active = false
}

// Activate returns the product to sale.
func (p *Product) Activate() {
	p.active = true
}

// Update replaces the mutable catalog attributes of the product.
func (p *Product) Update(name, description string, price kernel.Money, categoryID kernel.UUID) error {
	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setCategoryID(categoryID),
	); err != nil {
		return err
	}

	p.description = description
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if price.IsZero() {
		return ErrProductPriceIsInvalid
	}
	p.price = price
	return nil
}

func (p *Product) setCategoryID(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return ErrProductCategoryIsRequired
	}
	p.categoryID = &categoryID
	return nil
}
