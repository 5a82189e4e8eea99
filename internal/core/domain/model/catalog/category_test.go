package catalog_test

import (
	"testing"

	"food/internal/core/domain/model/catalog"
	"food/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("creates active category", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := catalog.NewCategory(id, "Lanches")

		require.NoError(t, err)
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "Lanches", c.Name())
		assert.True(t, c.IsActive())
		assert.NoError(t, c.Validate())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := catalog.NewCategory(kernel.NewUUID(), "")

		require.ErrorIs(t, err, catalog.ErrCategoryNameIsRequired)
	})

	t.Run("rejects zero id", func(t *testing.T) {
		_, err := catalog.NewCategory(kernel.UUID{}, "Lanches")

		require.Error(t, err)
	})
}

func TestCategory_Rename(t *testing.T) {
	c, err := catalog.NewCategory(kernel.NewUUID(), "Lanches")
	require.NoError(t, err)

	require.NoError(t, c.Rename("Bebidas"))
	assert.Equal(t, "Bebidas", c.Name())

	require.ErrorIs(t, c.Rename(""), catalog.ErrCategoryNameIsRequired)
	assert.Equal(t, "Bebidas", c.Name())
}

func TestCategory_Activation(t *testing.T) {
	c, err := catalog.NewCategory(kernel.NewUUID(), "Lanches")
	require.NoError(t, err)

	c.Deactivate()
	assert.False(t, c.IsActive())

	c.Activate()
	assert.True(t, c.IsActive())
}

func TestRestoreCategory(t *testing.T) {
	c, err := catalog.RestoreCategory(kernel.NewUUID(), "Sobremesas", false)

	require.NoError(t, err)
	assert.False(t, c.IsActive())
}

func TestCategory_Validate(t *testing.T) {
	var c catalog.Category
	require.ErrorIs(t, c.Validate(), catalog.ErrCategoryIsNotConstructed)
}
