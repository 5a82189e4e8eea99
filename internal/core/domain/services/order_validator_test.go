package services_test

import (
	"context"
	"testing"
	"time"

	"food/internal/core/domain/model/catalog"
	"food/internal/core/domain/model/kernel"
	"food/internal/core/domain/model/order"
	"food/internal/core/domain/services"
	"food/internal/core/ports"
	"food/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductCatalog struct{ mock.Mock }

func (m *MockProductCatalog) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*catalog.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCategoryCatalog struct{ mock.Mock }

func (m *MockCategoryCatalog) Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*catalog.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockClientDirectory struct{ mock.Mock }

func (m *MockClientDirectory) GetClientByTaxID(ctx context.Context, taxID string) (*ports.ClientRecord, error) {
	args := m.Called(ctx, taxID)
	if c := args.Get(0); c != nil {
		return c.(*ports.ClientRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

type validatorFixture struct {
	products   *MockProductCatalog
	categories *MockCategoryCatalog
	clients    *MockClientDirectory
	validator  services.OrderValidator
}

func newValidatorFixture() *validatorFixture {
	f := &validatorFixture{
		products:   new(MockProductCatalog),
		categories: new(MockCategoryCatalog),
		clients:    new(MockClientDirectory),
	}
	f.validator = services.NewOrderValidator(f.products, f.categories, f.clients)
	return f
}

func (f *validatorFixture) assertExpectations(t *testing.T) {
	t.Helper()
	f.products.AssertExpectations(t)
	f.categories.AssertExpectations(t)
	f.clients.AssertExpectations(t)
}

func newCandidateOrder(t *testing.T, taxID string, items []order.Item) *order.Order {
	t.Helper()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(kernel.NewUUID(), "Combo 1", "", taxID, items, now)
	require.NoError(t, err)
	return o
}

func newActiveProduct(t *testing.T, id, categoryID kernel.UUID, price string) *catalog.Product {
	t.Helper()
	m, err := kernel.NewMoneyFromString(price)
	require.NoError(t, err)
	p, err := catalog.RestoreProduct(id, "Hambúrguer", "", m, true, &categoryID)
	require.NoError(t, err)
	return p
}

func newActiveCategory(t *testing.T, id kernel.UUID) *catalog.Category {
	t.Helper()
	c, err := catalog.RestoreCategory(id, "Lanches", true)
	require.NoError(t, err)
	return c
}

func TestOrderValidator_ValidateAndPrice(t *testing.T) {
	ctx := context.Background()

	t.Run("prices order with one item", func(t *testing.T) {
		f := newValidatorFixture()
		productID := kernel.NewUUID()
		categoryID := kernel.NewUUID()
		item, _ := order.NewItem(productID, 2)
		o := newCandidateOrder(t, "", []order.Item{item})

		f.products.On("Get", ctx, productID).
			Return(newActiveProduct(t, productID, categoryID, "25.90"), nil).Once()
		f.categories.On("Get", ctx, categoryID).
			Return(newActiveCategory(t, categoryID), nil).Once()

		err := f.validator.ValidateAndPrice(ctx, o)

		require.NoError(t, err)
		expected, _ := kernel.NewMoneyFromString("51.80")
		assert.True(t, o.TotalAmount().IsEqual(expected), "total is %s", o.TotalAmount())
		f.assertExpectations(t)
	})

	t.Run("total is the exact sum over items", func(t *testing.T) {
		f := newValidatorFixture()
		categoryID := kernel.NewUUID()
		burgerID := kernel.NewUUID()
		sodaID := kernel.NewUUID()
		burgerItem, _ := order.NewItem(burgerID, 3)
		sodaItem, _ := order.NewItem(sodaID, 2)
		o := newCandidateOrder(t, "", []order.Item{burgerItem, sodaItem})

		f.products.On("Get", ctx, burgerID).
			Return(newActiveProduct(t, burgerID, categoryID, "25.90"), nil).Once()
		f.products.On("Get", ctx, sodaID).
			Return(newActiveProduct(t, sodaID, categoryID, "0.10"), nil).Once()
		f.categories.On("Get", ctx, categoryID).
			Return(newActiveCategory(t, categoryID), nil).Twice()

		require.NoError(t, f.validator.ValidateAndPrice(ctx, o))

		// 3*25.90 + 2*0.10 = 77.90, exact
		expected, _ := kernel.NewMoneyFromString("77.90")
		assert.True(t, o.TotalAmount().IsEqual(expected), "total is %s", o.TotalAmount())
	})

	t.Run("rejects order without items", func(t *testing.T) {
		f := newValidatorFixture()
		o := newCandidateOrder(t, "", nil)

		err := f.validator.ValidateAndPrice(ctx, o)

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrOrderValidation)
		assert.Equal(t, "Order must have at least one item.", err.Error())
		f.assertExpectations(t)
	})

	t.Run("rejects zero quantity before any product lookup", func(t *testing.T) {
		f := newValidatorFixture()
		good, _ := order.NewItem(kernel.NewUUID(), 1)
		bad, _ := order.NewItem(kernel.NewUUID(), 0)
		o := newCandidateOrder(t, "", []order.Item{good, bad})

		err := f.validator.ValidateAndPrice(ctx, o)

		require.Error(t, err)
		assert.Equal(t, "Each item must have at least quantity 1.", err.Error())
		f.products.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("unknown tax id surfaces ClientNotFoundError before product lookups", func(t *testing.T) {
		f := newValidatorFixture()
		item, _ := order.NewItem(kernel.NewUUID(), 1)
		o := newCandidateOrder(t, "12345678900", []order.Item{item})

		f.clients.On("GetClientByTaxID", ctx, "12345678900").
			Return(nil, ports.NewClientNotFoundError("12345678900")).Once()

		err := f.validator.ValidateAndPrice(ctx, o)

		require.Error(t, err)
		require.ErrorIs(t, err, ports.ErrClientNotFound)
		assert.NotErrorIs(t, err, order.ErrOrderValidation)
		f.products.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
		f.assertExpectations(t)
	})

	t.Run("directory outage propagates, not treated as not found", func(t *testing.T) {
		f := newValidatorFixture()
		item, _ := order.NewItem(kernel.NewUUID(), 1)
		o := newCandidateOrder(t, "12345678900", []order.Item{item})

		f.clients.On("GetClientByTaxID", ctx, "12345678900").
			Return(nil, ports.NewClientDirectoryError(assert.AnError)).Once()

		err := f.validator.ValidateAndPrice(ctx, o)

		require.Error(t, err)
		require.ErrorIs(t, err, ports.ErrClientDirectoryUnavailable)
		assert.NotErrorIs(t, err, ports.ErrClientNotFound)
	})

	t.Run("known tax id passes through to pricing", func(t *testing.T) {
		f := newValidatorFixture()
		productID := kernel.NewUUID()
		categoryID := kernel.NewUUID()
		item, _ := order.NewItem(productID, 1)
		o := newCandidateOrder(t, "12345678900", []order.Item{item})

		f.clients.On("GetClientByTaxID", ctx, "12345678900").
			Return(&ports.ClientRecord{TaxID: "12345678900"}, nil).Once()
		f.products.On("Get", ctx, productID).
			Return(newActiveProduct(t, productID, categoryID, "25.90"), nil).Once()
		f.categories.On("Get", ctx, categoryID).
			Return(newActiveCategory(t, categoryID), nil).Once()

		require.NoError(t, f.validator.ValidateAndPrice(ctx, o))
		f.assertExpectations(t)
	})

	t.Run("missing product", func(t *testing.T) {
		f := newValidatorFixture()
		productID := kernel.NewUUID()
		item, _ := order.NewItem(productID, 1)
		o := newCandidateOrder(t, "", []order.Item{item})

		f.products.On("Get", ctx, productID).
			Return(nil, errs.NewObjectNotFoundError("product", productID.String())).Once()

		err := f.validator.ValidateAndPrice(ctx, o)

		require.ErrorIs(t, err, order.ErrOrderValidation)
		assert.Equal(t, "Product with ID "+productID.String()+" not found.", err.Error())
	})

	t.Run("inactive product", func(t *testing.T) {
		f := newValidatorFixture()
		productID := kernel.NewUUID()
		categoryID := kernel.NewUUID()
		price, _ := kernel.NewMoneyFromString("25.90")
		inactive, err := catalog.RestoreProduct(productID, "Hambúrguer", "", price, false, &categoryID)
		require.NoError(t, err)
		item, _ := order.NewItem(productID, 1)
		o := newCandidateOrder(t, "", []order.Item{item})

		f.products.On("Get", ctx, productID).Return(inactive, nil).Once()

		err = f.validator.ValidateAndPrice(ctx, o)

		require.ErrorIs(t, err, order.ErrOrderValidation)
		assert.Equal(t, "Product 'Hambúrguer' is not available.", err.Error())
		f.categories.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("product without category", func(t *testing.T) {
		f := newValidatorFixture()
		productID := kernel.NewUUID()
		price, _ := kernel.NewMoneyFromString("25.90")
		uncategorized, err := catalog.RestoreProduct(productID, "Hambúrguer", "", price, true, nil)
		require.NoError(t, err)
		item, _ := order.NewItem(productID, 1)
		o := newCandidateOrder(t, "", []order.Item{item})

		f.products.On("Get", ctx, productID).Return(uncategorized, nil).Once()

		err = f.validator.ValidateAndPrice(ctx, o)

		require.ErrorIs(t, err, order.ErrOrderValidation)
		assert.Equal(t, "Product 'Hambúrguer' does not have a category assigned.", err.Error())
	})

	t.Run("missing category", func(t *testing.T) {
		f := newValidatorFixture()
		productID := kernel.NewUUID()
		categoryID := kernel.NewUUID()
		item, _ := order.NewItem(productID, 1)
		o := newCandidateOrder(t, "", []order.Item{item})

		f.products.On("Get", ctx, productID).
			Return(newActiveProduct(t, productID, categoryID, "25.90"), nil).Once()
		f.categories.On("Get", ctx, categoryID).
			Return(nil, errs.NewObjectNotFoundError("category", categoryID.String())).Once()

		err := f.validator.ValidateAndPrice(ctx, o)

		require.ErrorIs(t, err, order.ErrOrderValidation)
		assert.Equal(t, "Category for product 'Hambúrguer' not found.", err.Error())
	})

	t.Run("inactive category", func(t *testing.T) {
		f := newValidatorFixture()
		productID := kernel.NewUUID()
		categoryID := kernel.NewUUID()
		inactive, err := catalog.RestoreCategory(categoryID, "Lanches", false)
		require.NoError(t, err)
		item, _ := order.NewItem(productID, 1)
		o := newCandidateOrder(t, "", []order.Item{item})

		f.products.On("Get", ctx, productID).
			Return(newActiveProduct(t, productID, categoryID, "25.90"), nil).Once()
		f.categories.On("Get", ctx, categoryID).Return(inactive, nil).Once()

		err = f.validator.ValidateAndPrice(ctx, o)

		require.ErrorIs(t, err, order.ErrOrderValidation)
		assert.Equal(t, "Category 'Lanches' is not active.", err.Error())
	})

	t.Run("rejects order that bypassed the constructor", func(t *testing.T) {
		f := newValidatorFixture()
		var o order.Order

		require.ErrorIs(t, f.validator.ValidateAndPrice(ctx, &o), order.ErrOrderIsNotConstructed)
	})

	t.Run("storage failure during product lookup propagates", func(t *testing.T) {
		f := newValidatorFixture()
		productID := kernel.NewUUID()
		item, _ := order.NewItem(productID, 1)
		o := newCandidateOrder(t, "", []order.Item{item})

		f.products.On("Get", ctx, productID).Return(nil, assert.AnError).Once()

		err := f.validator.ValidateAndPrice(ctx, o)

		require.ErrorIs(t, err, assert.AnError)
		assert.NotErrorIs(t, err, order.ErrOrderValidation)
	})
}
