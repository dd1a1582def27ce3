package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

// StageCountsResponse is the order dashboard for one window.
type StageCountsResponse struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
	ports.StageCounts
	Total int64 `json:"total"`
}

// GetOrderStageCountsQueryHandler counts open orders placed in the window
// and closed or archived orders last updated in it. Deleted orders are never
// counted.
type GetOrderStageCountsQueryHandler struct {
	reader ports.SalesReader
	clock  ports.Clock
	cached
}

func NewGetOrderStageCountsQueryHandler(reader ports.SalesReader, clock ports.Clock) GetOrderStageCountsQueryHandler {
	return GetOrderStageCountsQueryHandler{
		reader: reader,
		clock:  clock,
	}
}

func (h GetOrderStageCountsQueryHandler) WithCache(cache ports.ReportCache, ttl time.Duration) GetOrderStageCountsQueryHandler {
	h.setCache(cache, ttl)
	return h
}

func (h GetOrderStageCountsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderStageCountsQuery,
) (StageCountsResponse, error) {
	if err := query.Validate(); err != nil {
		return StageCountsResponse{}, err
	}

	return fetch(ctx, h.cached, "stages:"+query.key(), func(ctx context.Context) (StageCountsResponse, error) {
		var earliest *time.Time
		if query.From() == nil {
			var err error
			if earliest, err = h.reader.EarliestCreatedAt(ctx); err != nil {
				return StageCountsResponse{}, err
			}
		}

		borders, err := services.ResolveTimeBorders(query.From(), query.To(), earliest, h.clock.Now())
		if err != nil {
			return StageCountsResponse{}, err
		}

		counts, err := h.reader.StageCounts(ctx, borders)
		if err != nil {
			return StageCountsResponse{}, err
		}

		return StageCountsResponse{
			From:        borders.From,
			To:          borders.To,
			StageCounts: counts,
			Total:       counts.Total(),
		}, nil
	})
}
