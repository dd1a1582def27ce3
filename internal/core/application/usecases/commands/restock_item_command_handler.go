package commands

import (
	"context"
)

// RestockItemCommandHandler adds delivered units to an item's stock. The
// item row is locked for the duration of the transaction, so restocks and
// order reservations never overwrite each other.
type RestockItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewRestockItemCommandHandler(uowFactory CatalogUoWFactory) RestockItemCommandHandler {
	return RestockItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the stock after the delivery.
func (h *RestockItemCommandHandler) Handle(ctx context.Context, cmd RestockItemCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	itemRepo := uow.ItemRepository()
	item, err := itemRepo.Get(ctx, cmd.ItemID())
	if err != nil {
		return 0, err
	}

	if err = item.Restock(cmd.Quantity()); err != nil {
		return 0, err
	}

	if err = itemRepo.Update(ctx, item); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return item.Stock(), nil
}
