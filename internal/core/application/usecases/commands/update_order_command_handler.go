package commands

import (
	"context"

	"food/internal/core/domain/model/kernel"
)

// UpdateOrderCommandHandler handles full order updates. Loads the order,
// applies the new details and items, re-runs the validation pipeline, and
// persists the repriced order.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  OrderValidator
	clock      kernel.Clock
}

// NewUpdateOrderCommandHandler creates a handler for full order updates.
func NewUpdateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	validator OrderValidator,
	clock kernel.Clock,
) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		clock:      clock,
	}
}

// Handle processes the order update command.
// A rejected update leaves the stored order untouched.
func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := domainItems(cmd.Items())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	now := h.clock.Now()
	if err = existing.UpdateDetails(cmd.Title(), cmd.Description(), cmd.CustomerTaxID(), now); err != nil {
		return err
	}
	existing.ReplaceItems(items, now)

	if err = h.validator.ValidateAndPrice(ctx, existing); err != nil {
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
