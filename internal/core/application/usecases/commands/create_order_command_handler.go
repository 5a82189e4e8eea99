package commands

import (
	"context"

	"food/internal/core/domain/model/kernel"
	"food/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Runs the validation pipeline, prices the order, and persists it in SENT
// status, ready for the kitchen to pick up.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, validator, clock)
//	cmd, _ := NewCreateOrderCommand(kernel.NewUUID(), "Combo 1", "", "", items)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	validator  OrderValidator
	clock      kernel.Clock
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	validator OrderValidator,
	clock kernel.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		validator:  validator,
		clock:      clock,
	}
}

// Handle processes the order creation command.
// A rejected order is never persisted; an accepted one is stored with its
// computed total in SENT status.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	items, err := domainItems(cmd.Items())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	candidate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Title(),
		cmd.Description(),
		cmd.CustomerTaxID(),
		items,
		now,
	)
	if err != nil {
		return err
	}

	if err = h.validator.ValidateAndPrice(ctx, candidate); err != nil {
		return err
	}

	if err = candidate.SetStatus(order.Sent, now); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, candidate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
