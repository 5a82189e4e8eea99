package commands

import (
	"context"

	"food/internal/core/domain/model/kernel"
)

// AdvanceOrderStatusCommandHandler moves an order one step forward in the
// workflow. An order that cannot advance, such as a FINISHED one, fails with
// an IllegalStateError and nothing is persisted.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      kernel.Clock
}

// NewAdvanceOrderStatusCommandHandler creates a handler for workflow advances.
func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the advance command.
func (h *AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
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

	if err = existing.Advance(h.clock.Now()); err != nil {
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
