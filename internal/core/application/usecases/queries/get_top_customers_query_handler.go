package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

type GetTopCustomersQueryHandler struct {
	reader     ports.SalesReader
	aggregator services.TurnoverAggregator
	clock      ports.Clock
	cached
}

func NewGetTopCustomersQueryHandler(
	reader ports.SalesReader,
	aggregator services.TurnoverAggregator,
	clock ports.Clock,
) GetTopCustomersQueryHandler {
	return GetTopCustomersQueryHandler{
		reader:     reader,
		aggregator: aggregator,
		clock:      clock,
	}
}

func (h GetTopCustomersQueryHandler) WithCache(cache ports.ReportCache, ttl time.Duration) GetTopCustomersQueryHandler {
	h.setCache(cache, ttl)
	return h
}

func (h GetTopCustomersQueryHandler) Handle(ctx context.Context, query GetTopCustomersQuery) (TopSalesResponse, error) {
	if err := query.Validate(); err != nil {
		return TopSalesResponse{}, err
	}

	return fetch(ctx, h.cached, "customers:"+query.key(), func(ctx context.Context) (TopSalesResponse, error) {
		return rankSales(ctx, h.reader, h.aggregator, h.clock.Now(), query.period, h.reader.CustomerSales)
	})
}
