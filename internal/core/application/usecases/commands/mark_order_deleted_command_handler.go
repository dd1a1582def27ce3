package commands

import (
	"context"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// MarkOrderDeletedCommandHandler soft deletes orders.
//
// Deleting an order that never reached Archived returns its quantities to
// item stock in the same transaction. Deleting an already deleted order, or
// an order that no longer meets a stale delete's precondition, writes nothing.
type MarkOrderDeletedCommandHandler struct {
	uowFactory StockUoWFactory
	clock      ports.Clock
}

func NewMarkOrderDeletedCommandHandler(uowFactory StockUoWFactory, clock ports.Clock) MarkOrderDeletedCommandHandler {
	return MarkOrderDeletedCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle reports whether the order was deleted by this call.
func (h *MarkOrderDeletedCommandHandler) Handle(ctx context.Context, cmd MarkOrderDeletedCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	if !cmd.Applies(o) {
		return false, nil
	}

	changed, err := o.MarkDeleted(h.clock.Now())
	if err != nil || !changed {
		return false, err
	}

	if o.DeletedFrom() != order.Archived {
		if err = restock(ctx, uow.ItemRepository(), o.Lines()); err != nil {
			return false, err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
