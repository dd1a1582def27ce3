package ports

import (
	"context"
	"time"

	"warehouse/internal/core/domain/services"
)

// StageCounts is how many orders reached each stage within a window.
type StageCounts struct {
	Open     int64 `json:"open"`
	Closed   int64 `json:"closed"`
	Archived int64 `json:"archived"`
}

// Total sums all counted orders.
func (c StageCounts) Total() int64 {
	return c.Open + c.Closed + c.Archived
}

// SalesReader is the read side behind the turnover reports. Only orders in
// stage Archived count as sales; deleted orders never do.
//
// Example:
//
//	earliest, err := reader.EarliestArchivedAt(ctx)
//	...
//	borders, err := services.ResolveTimeBorders(from, to, earliest, now)
//	...
//	rows, err := reader.ItemSales(ctx, borders)
type SalesReader interface {
	// EarliestArchivedAt returns the update time of the first archived order,
	// nil when nothing is archived.
	EarliestArchivedAt(ctx context.Context) (*time.Time, error)

	// EarliestCreatedAt returns the creation time of the first live order,
	// nil when there are none.
	EarliestCreatedAt(ctx context.Context) (*time.Time, error)

	// ItemSales returns sold quantity and turnover per item name for orders
	// archived within borders.
	ItemSales(ctx context.Context, borders services.TimeBorders) ([]services.SaleRow, error)

	// SupplierSales is ItemSales grouped by the supplier of each item.
	SupplierSales(ctx context.Context, borders services.TimeBorders) ([]services.SaleRow, error)

	// CustomerSales is ItemSales grouped by the customer company of each order.
	CustomerSales(ctx context.Context, borders services.TimeBorders) ([]services.SaleRow, error)

	// ArchivedTotals returns the total of every order archived within borders.
	ArchivedTotals(ctx context.Context, borders services.TimeBorders) ([]services.ArchivedTotal, error)

	// StageCounts counts open orders created within borders and closed or
	// archived orders updated within borders.
	StageCounts(ctx context.Context, borders services.TimeBorders) (StageCounts, error)
}
