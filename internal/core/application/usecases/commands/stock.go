package commands

import (
	"context"
	"slices"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/ports"
)

// lockItems loads every item once, in ascending id order. ItemRepository.Get
// takes a row lock, so transactions touching overlapping items always queue on
// the lowest id first.
func lockItems(ctx context.Context, items ports.ItemRepository, ids []kernel.UUID) (map[kernel.UUID]*catalog.Item, error) {
	sorted := slices.Clone(ids)
	slices.SortFunc(sorted, kernel.UUID.Compare)
	sorted = slices.Compact(sorted)

	locked := make(map[kernel.UUID]*catalog.Item, len(sorted))
	for _, id := range sorted {
		item, err := items.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		locked[id] = item
	}
	return locked, nil
}

// restock returns the quantities of lines to their items.
func restock(ctx context.Context, items ports.ItemRepository, lines []order.Line) error {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ItemID())
	}

	locked, err := lockItems(ctx, items, ids)
	if err != nil {
		return err
	}

	for _, l := range lines {
		if err = moveStock(ctx, items, locked[l.ItemID()], -l.Quantity()); err != nil {
			return err
		}
	}
	return nil
}

// moveStock reserves delta units of a locked item, or restocks -delta units
// when delta is negative.
func moveStock(ctx context.Context, items ports.ItemRepository, item *catalog.Item, delta int) error {
	if delta == 0 {
		return nil
	}

	var err error
	if delta > 0 {
		err = item.Reserve(delta)
	} else {
		err = item.Restock(-delta)
	}
	if err != nil {
		return err
	}

	return items.Update(ctx, item)
}
