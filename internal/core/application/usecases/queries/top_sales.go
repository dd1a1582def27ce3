package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

// TopSalesResponse is a turnover ranking together with the window it covers.
//
// Example JSON:
//
//	{
//	  "from": "2023-01-01T00:00:00Z",
//	  "to": "2023-01-31T23:59:59.999Z",
//	  "names": {"1": "Pallet jack", "2": "Stretch film"},
//	  "quantities": {"1": 12, "2": 7},
//	  "turnovers": {"1": "3588", "2": "51.8"}
//	}
type TopSalesResponse struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
	services.Ranking
}

type salesSource func(ctx context.Context, borders services.TimeBorders) ([]services.SaleRow, error)

// rankSales resolves the window against the first archived order and ranks
// the rows the source returns for it.
func rankSales(
	ctx context.Context,
	reader ports.SalesReader,
	aggregator services.TurnoverAggregator,
	now time.Time,
	p period,
	source salesSource,
) (TopSalesResponse, error) {
	var earliest *time.Time
	if p.From() == nil {
		var err error
		if earliest, err = reader.EarliestArchivedAt(ctx); err != nil {
			return TopSalesResponse{}, err
		}
	}

	borders, err := services.ResolveTimeBorders(p.From(), p.To(), earliest, now)
	if err != nil {
		return TopSalesResponse{}, err
	}

	rows, err := source(ctx, borders)
	if err != nil {
		return TopSalesResponse{}, err
	}

	return TopSalesResponse{
		From:    borders.From,
		To:      borders.To,
		Ranking: aggregator.Rank(rows),
	}, nil
}
