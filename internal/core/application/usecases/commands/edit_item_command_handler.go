package commands

import (
	"context"
)

// EditItemCommandHandler rewrites an item's descriptive fields and price.
// Lines already on orders keep the price they were created with.
type EditItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewEditItemCommandHandler(uowFactory CatalogUoWFactory) EditItemCommandHandler {
	return EditItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns ObjectNotFoundError for an unknown item and
// ValueIsInvalidError when the new name is taken by another item.
func (h *EditItemCommandHandler) Handle(ctx context.Context, cmd EditItemCommand) error {
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

	itemRepo := uow.ItemRepository()
	item, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return err
	}

	if err = item.Edit(cmd.Name(), cmd.Category(), cmd.Price()); err != nil {
		return err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
