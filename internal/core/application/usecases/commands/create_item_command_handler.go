package commands

import (
	"context"

	"warehouse/internal/core/domain/model/catalog"
)

// CreateItemCommandHandler stores a new item after checking that its
// supplier exists.
type CreateItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateItemCommandHandler(uowFactory CatalogUoWFactory) CreateItemCommandHandler {
	return CreateItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateItemCommandHandler) Handle(ctx context.Context, cmd CreateItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := catalog.NewItem(
		cmd.ItemID(),
		cmd.Name(),
		cmd.Category(),
		cmd.Price(),
		cmd.Stock(),
		cmd.SupplierID(),
	)
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

	if _, err = uow.SupplierRepository().Get(ctx, cmd.SupplierID()); err != nil {
		return err
	}

	if err = uow.ItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
