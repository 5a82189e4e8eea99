// Package productrepo provides data transfer objects and mapping functions
// for catalog product persistence.
package productrepo

import (
	"food/internal/core/domain/model/catalog"
	"food/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting products.
type ProductDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string
	Description string
	Price       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Active      bool
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product entity to its database representation.
func fromDomain(product *catalog.Product) ProductDTO {
	var categoryID *uuid.UUID
	if id := product.CategoryID(); id != nil {
		raw := id.Bytes()
		categoryID = &raw
	}

	return ProductDTO{
		ID:          product.ID().Bytes(),
		Name:        product.Name(),
		Description: product.Description(),
		Price:       product.Price().Decimal(),
		Active:      product.IsActive(),
		CategoryID:  categoryID,
	}
}

// toDomain converts a database DTO to a product entity using RestoreProduct.
func toDomain(dto ProductDTO) (*catalog.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var categoryID *kernel.UUID
	if dto.CategoryID != nil {
		cID, categoryErr := kernel.UUIDFromBytes((*dto.CategoryID)[:])
		if categoryErr != nil {
			return nil, categoryErr
		}

		categoryID = &cID
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return catalog.RestoreProduct(id, dto.Name, dto.Description, price, dto.Active, categoryID)
}
