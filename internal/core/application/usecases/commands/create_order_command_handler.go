package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// CreateOrderCommandHandler places orders: it checks the customer, reserves
// stock for every line and prices each line at the current item price.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
type CreateOrderCommandHandler struct {
	uowFactory StockUoWFactory
	clock      ports.Clock
}

func NewCreateOrderCommandHandler(uowFactory StockUoWFactory, clock ports.Clock) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores the order in stage Open. Missing customers or items yield
// ObjectNotFoundError, insufficient stock ValueIsOutOfRangeError.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	ids := make([]kernel.UUID, 0, len(cmd.Lines()))
	for _, in := range cmd.Lines() {
		ids = append(ids, in.ItemID)
	}
	items, err := lockItems(ctx, itemRepo, ids)
	if err != nil {
		return err
	}

	lines := make([]order.Line, 0, len(cmd.Lines()))
	for _, in := range cmd.Lines() {
		item := items[in.ItemID]
		if err = moveStock(ctx, itemRepo, item, in.Quantity); err != nil {
			return err
		}

		line, err := order.NewLine(item.ID(), in.Quantity, item.Price())
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), lines, h.clock.Now())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
