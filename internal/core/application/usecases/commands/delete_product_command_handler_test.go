package commands_test

import (
	"testing"

	"food/internal/core/application/usecases/commands"
	"food/internal/core/domain/model/kernel"
	"food/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteProductCommand(t *testing.T) {
	t.Run("invalid product id", func(t *testing.T) {
		_, err := commands.NewDeleteProductCommand(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.DeleteProductCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrDeleteProductCommandIsNotConstructed)
	})
}

func TestDeleteProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewDeleteProductCommand(productID)
	require.NoError(t, err)

	products := new(MockProductRepository)
	uow := new(MockCatalogUoW)
	factory := new(MockCatalogUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Delete", ctx, productID).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeleteProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	factory.AssertExpectations(t)
	uow.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestDeleteProductCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	productID := kernel.NewUUID()
	cmd, err := commands.NewDeleteProductCommand(productID)
	require.NoError(t, err)

	products := new(MockProductRepository)
	uow := new(MockCatalogUoW)
	factory := new(MockCatalogUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ProductRepository").Return(products).Once(),
		products.On("Delete", ctx, productID).
			Return(errs.NewObjectNotFoundError("productID", productID.String())).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewDeleteProductCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
