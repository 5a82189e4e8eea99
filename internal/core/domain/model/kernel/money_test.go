package kernel_test

import (
	"testing"

	"food/internal/core/domain/model/kernel"
	"food/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from positive decimal", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(25.90))

		require.NoError(t, err)
		assert.Equal(t, "25.90", m.String())
	})

	t.Run("should accept zero", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.Zero)

		require.NoError(t, err)
		assert.True(t, m.IsZero())
	})

	t.Run("should reject negative amount", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNewMoneyFromString(t *testing.T) {
	t.Run("should parse decimal string", func(t *testing.T) {
		m, err := kernel.NewMoneyFromString("51.80")

		require.NoError(t, err)
		assert.Equal(t, "51.80", m.String())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("not a number")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative string", func(t *testing.T) {
		_, err := kernel.NewMoneyFromString("-0.01")

		require.Error(t, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add is exact", func(t *testing.T) {
		a, _ := kernel.NewMoneyFromString("0.10")
		b, _ := kernel.NewMoneyFromString("0.20")

		assert.Equal(t, "0.30", a.Add(b).String())
	})

	t.Run("multiply by quantity is exact", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("25.90")

		total := price.MulQuantity(2)

		expected, _ := kernel.NewMoneyFromString("51.80")
		assert.True(t, total.IsEqual(expected))
	})

	t.Run("zero money is additive identity", func(t *testing.T) {
		price, _ := kernel.NewMoneyFromString("9.99")

		assert.True(t, kernel.ZeroMoney().Add(price).IsEqual(price))
	})
}
