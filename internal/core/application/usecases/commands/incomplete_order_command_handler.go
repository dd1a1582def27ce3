package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// IncompleteOrderCommandHandler reopens a Closed order.
type IncompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewIncompleteOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) IncompleteOrderCommandHandler {
	return IncompleteOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle loads the order, applies the transition and writes it back under
// the version it was read with.
func (h *IncompleteOrderCommandHandler) Handle(ctx context.Context, cmd IncompleteOrderCommand) error {
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
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Incomplete(h.clock.Now()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
