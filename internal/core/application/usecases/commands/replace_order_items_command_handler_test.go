package commands_test

import (
	"testing"

	"food/internal/core/application/usecases/commands"
	"food/internal/core/domain/model/kernel"
	"food/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewReplaceOrderItemsCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewReplaceOrderItemsCommand(
			kernel.NewUUID(),
			[]commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 1}},
		)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("invalid order id", func(t *testing.T) {
		_, err := commands.NewReplaceOrderItemsCommand(kernel.UUID{}, nil)
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.ReplaceOrderItemsCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrReplaceOrderItemsCommandIsNotConstructed)
	})
}

func TestReplaceOrderItemsCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	newProductID := kernel.NewUUID()
	cmd, err := commands.NewReplaceOrderItemsCommand(
		orderID,
		[]commands.OrderItemInput{{ProductID: newProductID, Quantity: 2}},
	)
	require.NoError(t, err)

	stored := newStoredOrder(t, orderID)
	validator := new(MockOrderValidator)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(stored, nil).Once(),
		validator.On("ValidateAndPrice", ctx, stored).Run(priceOrder("51.80")).Return(nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewReplaceOrderItemsCommandHandler(factory, validator, fixedClock{testNow})
	require.NoError(t, h.Handle(ctx, cmd))

	require.Len(t, stored.Items(), 1)
	assert.True(t, newProductID.IsEqual(stored.Items()[0].ProductID()))
	expected, _ := kernel.NewMoneyFromString("51.80")
	assert.True(t, stored.TotalAmount().IsEqual(expected))
	uow.AssertExpectations(t)
}

func TestReplaceOrderItemsCommandHandler_Handle_RejectedItemsAreNotSaved(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewReplaceOrderItemsCommand(orderID, nil)
	require.NoError(t, err)

	stored := newStoredOrder(t, orderID)
	validator := new(MockOrderValidator)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(stored, nil).Once(),
		validator.On("ValidateAndPrice", ctx, stored).
			Return(order.NewValidationError("Order must have at least one item.")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewReplaceOrderItemsCommandHandler(factory, validator, fixedClock{testNow})
	require.ErrorIs(t, h.Handle(ctx, cmd), order.ErrOrderValidation)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
