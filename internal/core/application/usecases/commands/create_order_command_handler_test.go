package commands_test

import (
	"errors"
	"testing"

	"food/internal/core/application/usecases/commands"
	"food/internal/core/domain/model/kernel"
	"food/internal/core/domain/model/order"
	"food/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	items := []commands.OrderItemInput{{ProductID: kernel.NewUUID(), Quantity: 2}}
	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), "Combo 1", "", "", items)
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	validator := new(MockOrderValidator)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		validator.On("ValidateAndPrice", ctx, mock.AnythingOfType("*order.Order")).
			Run(priceOrder("51.80")).Return(nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, validator, fixedClock{testNow})
	require.NoError(t, h.Handle(ctx, cmd))

	// the persisted order is priced and already in the SENT status
	saved := repo.Calls[0].Arguments.Get(1).(*order.Order)
	assert.Equal(t, order.Sent, saved.Status())
	expected, _ := kernel.NewMoneyFromString("51.80")
	assert.True(t, saved.TotalAmount().IsEqual(expected))
	assert.Nil(t, saved.ReceivedAt())

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
	validator.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, new(MockOrderValidator), fixedClock{testNow})
	require.Error(t, h.Handle(ctx, cmd))
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_RejectedOrderIsNeverPersisted(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	validator := new(MockOrderValidator)
	validator.On("ValidateAndPrice", ctx, mock.AnythingOfType("*order.Order")).
		Return(order.NewValidationError("Order must have at least one item.")).Once()

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, validator, fixedClock{testNow})
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, order.ErrOrderValidation)
	factory.AssertNotCalled(t, "Create")
	validator.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_UnknownClientIsNeverPersisted(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	validator := new(MockOrderValidator)
	validator.On("ValidateAndPrice", ctx, mock.AnythingOfType("*order.Order")).
		Return(ports.NewClientNotFoundError("12345678900")).Once()

	factory := new(MockOrderUoWFactory)
	h := commands.NewCreateOrderCommandHandler(factory, validator, fixedClock{testNow})
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrClientNotFound)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	validator := new(MockOrderValidator)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		validator.On("ValidateAndPrice", ctx, mock.Anything).Run(priceOrder("51.80")).Return(nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, validator, fixedClock{testNow})
	require.Error(t, h.Handle(ctx, cmd))
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	validator := new(MockOrderValidator)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		validator.On("ValidateAndPrice", ctx, mock.Anything).Run(priceOrder("51.80")).Return(nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, validator, fixedClock{testNow})
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_CommitError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	validator := new(MockOrderValidator)
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	factory := new(MockOrderUoWFactory)
	mock.InOrder(
		validator.On("ValidateAndPrice", ctx, mock.Anything).Run(priceOrder("51.80")).Return(nil).Once(),
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(errors.New("commit error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewCreateOrderCommandHandler(factory, validator, fixedClock{testNow})
	require.Error(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
