package commands

import (
	"context"
	"errors"

	"food/internal/core/domain/model/catalog"
	"food/internal/pkg/errs"
)

// ErrCategoryAlreadyExists is returned when a category with the requested
// name is already registered.
var ErrCategoryAlreadyExists = errors.New("category with this name already exists")

// CreateCategoryCommandHandler handles category registration.
// Category names are unique; a duplicate fails with ErrCategoryAlreadyExists.
type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewCreateCategoryCommandHandler creates a handler for category registration.
func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the category registration command.
func (h *CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	category, err := catalog.NewCategory(cmd.CategoryID(), cmd.Name())
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

	categoryRepo := uow.CategoryRepository()
	if _, err = categoryRepo.GetByName(ctx, cmd.Name()); err == nil {
		return ErrCategoryAlreadyExists
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	if err = categoryRepo.Add(ctx, category); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
