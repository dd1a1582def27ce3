package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

type GetTopSuppliersQueryHandler struct {
	reader     ports.SalesReader
	aggregator services.TurnoverAggregator
	clock      ports.Clock
	cached
}

func NewGetTopSuppliersQueryHandler(
	reader ports.SalesReader,
	aggregator services.TurnoverAggregator,
	clock ports.Clock,
) GetTopSuppliersQueryHandler {
	return GetTopSuppliersQueryHandler{
		reader:     reader,
		aggregator: aggregator,
		clock:      clock,
	}
}

func (h GetTopSuppliersQueryHandler) WithCache(cache ports.ReportCache, ttl time.Duration) GetTopSuppliersQueryHandler {
	h.setCache(cache, ttl)
	return h
}

func (h GetTopSuppliersQueryHandler) Handle(ctx context.Context, query GetTopSuppliersQuery) (TopSalesResponse, error) {
	if err := query.Validate(); err != nil {
		return TopSalesResponse{}, err
	}

	return fetch(ctx, h.cached, "suppliers:"+query.key(), func(ctx context.Context) (TopSalesResponse, error) {
		return rankSales(ctx, h.reader, h.aggregator, h.clock.Now(), query.period, h.reader.SupplierSales)
	})
}
