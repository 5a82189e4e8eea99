package commands

import (
	"context"

	"food/internal/core/domain/model/kernel"
)

// SetOrderStatusCommandHandler handles administrative status changes.
// The target status is applied unconditionally; entering RECEIVED for the
// first time stamps the order's received-at timestamp.
type SetOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewSetOrderStatusCommandHandler creates a handler for status changes.
func NewSetOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the status change command.
func (h *SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = existing.SetStatus(cmd.Status(), h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
