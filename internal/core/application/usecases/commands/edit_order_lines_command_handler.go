package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// EditOrderLinesCommandHandler replaces the lines of an Open order and moves
// item stock by the difference between old and new quantities.
//
// Items already on the order keep the unit price they were ordered at; new
// items are priced at the current catalog price. Every item of the old and
// new lines is locked up front, in ascending id order.
type EditOrderLinesCommandHandler struct {
	uowFactory StockUoWFactory
	clock      ports.Clock
}

func NewEditOrderLinesCommandHandler(uowFactory StockUoWFactory, clock ports.Clock) EditOrderLinesCommandHandler {
	return EditOrderLinesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *EditOrderLinesCommandHandler) Handle(ctx context.Context, cmd EditOrderLinesCommand) error {
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

	before := o.Lines()
	previous := make(map[kernel.UUID]order.Line, len(before))
	for _, l := range before {
		previous[l.ItemID()] = l
	}

	ids := make([]kernel.UUID, 0, len(before)+len(cmd.Lines()))
	for _, l := range before {
		ids = append(ids, l.ItemID())
	}
	for _, in := range cmd.Lines() {
		ids = append(ids, in.ItemID)
	}

	itemRepo := uow.ItemRepository()
	items, err := lockItems(ctx, itemRepo, ids)
	if err != nil {
		return err
	}

	lines := make([]order.Line, 0, len(cmd.Lines()))
	for _, in := range cmd.Lines() {
		price := items[in.ItemID].Price()
		if old, ok := previous[in.ItemID]; ok {
			price = old.UnitPrice()
		}
		line, err := order.NewLine(in.ItemID, in.Quantity, price)
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	// The stage check happens here, before any stock moves.
	if err = o.ReplaceLines(lines, h.clock.Now()); err != nil {
		return err
	}

	for _, l := range lines {
		delta := l.Quantity()
		if old, ok := previous[l.ItemID()]; ok {
			delta -= old.Quantity()
			delete(previous, l.ItemID())
		}
		if err = moveStock(ctx, itemRepo, items[l.ItemID()], delta); err != nil {
			return err
		}
	}

	// Whatever is left in previous was dropped from the order.
	for _, old := range before {
		if _, dropped := previous[old.ItemID()]; !dropped {
			continue
		}
		if err = moveStock(ctx, itemRepo, items[old.ItemID()], -old.Quantity()); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
