package commands

import (
	"context"

	"food/internal/core/domain/model/kernel"
)

// ReplaceOrderItemsCommandHandler handles item replacement on an existing
// order. Replacing items is the only operation after which the total amount is
// recomputed, so the updated order always goes back through the validator.
type ReplaceOrderItemsCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  OrderValidator
	clock      kernel.Clock
}

// NewReplaceOrderItemsCommandHandler creates a handler for item replacement.
func NewReplaceOrderItemsCommandHandler(
	uowFactory OrderUoWFactory,
	validator OrderValidator,
	clock kernel.Clock,
) ReplaceOrderItemsCommandHandler {
	return ReplaceOrderItemsCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		clock:      clock,
	}
}

// Handle processes the item replacement command.
func (h *ReplaceOrderItemsCommandHandler) Handle(ctx context.Context, cmd ReplaceOrderItemsCommand) error {
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

	existing.ReplaceItems(items, h.clock.Now())

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
