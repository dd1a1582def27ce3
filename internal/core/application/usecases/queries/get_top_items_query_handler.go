package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

type GetTopItemsQueryHandler struct {
	reader     ports.SalesReader
	aggregator services.TurnoverAggregator
	clock      ports.Clock
	cached
}

func NewGetTopItemsQueryHandler(
	reader ports.SalesReader,
	aggregator services.TurnoverAggregator,
	clock ports.Clock,
) GetTopItemsQueryHandler {
	return GetTopItemsQueryHandler{
		reader:     reader,
		aggregator: aggregator,
		clock:      clock,
	}
}

// WithCache returns a copy of the handler that memoizes results for ttl.
func (h GetTopItemsQueryHandler) WithCache(cache ports.ReportCache, ttl time.Duration) GetTopItemsQueryHandler {
	h.setCache(cache, ttl)
	return h
}

func (h GetTopItemsQueryHandler) Handle(ctx context.Context, query GetTopItemsQuery) (TopSalesResponse, error) {
	if err := query.Validate(); err != nil {
		return TopSalesResponse{}, err
	}

	return fetch(ctx, h.cached, "items:"+query.key(), func(ctx context.Context) (TopSalesResponse, error) {
		return rankSales(ctx, h.reader, h.aggregator, h.clock.Now(), query.period, h.reader.ItemSales)
	})
}
