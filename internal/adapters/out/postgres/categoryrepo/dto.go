// Package categoryrepo provides data transfer objects and mapping functions
// for catalog category persistence.
package categoryrepo

import (
	"food/internal/core/domain/model/catalog"
	"food/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CategoryDTO represents the database structure for persisting categories.
// Names are unique; the duplicate check in the create handler relies on it.
type CategoryDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string    `gorm:"uniqueIndex"`
	Active bool
}

// TableName specifies the database table name for category entities.
func (CategoryDTO) TableName() string {
	return "categories"
}

// fromDomain converts a category entity to its database representation.
func fromDomain(category *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:     category.ID().Bytes(),
		Name:   category.Name(),
		Active: category.IsActive(),
	}
}

// toDomain converts a database DTO to a category entity using RestoreCategory.
func toDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return catalog.RestoreCategory(id, dto.Name, dto.Active)
}
