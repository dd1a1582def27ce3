package ports

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderReader loads orders for display. Unlike OrderRepository it takes no
// locks and may run outside a transaction.
type OrderReader interface {
	// GetOrder loads an order in any stage, deleted ones included.
	// Returns ObjectNotFoundError if absent.
	GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByStage returns one page of the orders currently in stage, newest
	// first, and the number of orders in that stage. Open orders are sorted
	// by creation time, Closed and Archived orders by their last update.
	//
	// Example:
	//
	//	orders, total, err := reader.ListByStage(ctx, order.Closed, 20, 40)
	//	if err != nil {
	//	    return err
	//	}
	//	// orders holds the third page of 20, total the number of closed orders
	ListByStage(ctx context.Context, stage order.Stage, limit, offset int) ([]*order.Order, int64, error)
}
