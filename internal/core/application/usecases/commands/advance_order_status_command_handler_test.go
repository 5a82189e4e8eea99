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

func TestNewAdvanceOrderStatusCommand(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cmd, err := commands.NewAdvanceOrderStatusCommand(kernel.NewUUID())
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("invalid order id", func(t *testing.T) {
		_, err := commands.NewAdvanceOrderStatusCommand(kernel.UUID{})
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.AdvanceOrderStatusCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrAdvanceOrderStatusCommandIsNotConstructed)
	})
}

func TestAdvanceOrderStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID)
	require.NoError(t, err)

	stored := newStoredOrder(t, orderID) // SENT
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(stored, nil).Once(),
		repo.On("Update", ctx, stored).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAdvanceOrderStatusCommandHandler(factory, fixedClock{testNow})
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Received, stored.Status())
	require.NotNil(t, stored.ReceivedAt())
	uow.AssertExpectations(t)
}

func TestAdvanceOrderStatusCommandHandler_Handle_FinishedOrderIsNotSaved(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewAdvanceOrderStatusCommand(orderID)
	require.NoError(t, err)

	stored := newStoredOrder(t, orderID)
	require.NoError(t, stored.SetStatus(order.Finished, testNow))

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewAdvanceOrderStatusCommandHandler(factory, fixedClock{testNow})
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrIllegalStatusTransition)
	assert.Equal(t, order.MessageCannotAdvance, err.Error())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
