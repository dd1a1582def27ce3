package queries

import (
	"context"
	"time"

	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
)

// GetWeeklyTurnoverQueryHandler sums the totals of orders archived in the
// trailing week per calendar day, in the clock's location.
//
// Example:
//
//	days, err := handler.Handle(ctx, NewGetWeeklyTurnoverQuery())
//	if err != nil {
//	    return err
//	}
//	for _, d := range days {
//	    fmt.Println(d.Day.Format(time.DateOnly), d.Total)
//	}
type GetWeeklyTurnoverQueryHandler struct {
	reader ports.SalesReader
	clock  ports.Clock
	cached
}

func NewGetWeeklyTurnoverQueryHandler(reader ports.SalesReader, clock ports.Clock) GetWeeklyTurnoverQueryHandler {
	return GetWeeklyTurnoverQueryHandler{
		reader: reader,
		clock:  clock,
	}
}

func (h GetWeeklyTurnoverQueryHandler) WithCache(cache ports.ReportCache, ttl time.Duration) GetWeeklyTurnoverQueryHandler {
	h.setCache(cache, ttl)
	return h
}

// Handle always returns services.WeekDays entries, oldest first.
func (h GetWeeklyTurnoverQueryHandler) Handle(
	ctx context.Context,
	query GetWeeklyTurnoverQuery,
) ([]services.DayTurnover, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	key := "weekly:" + now.Format(services.DateLayout)

	return fetch(ctx, h.cached, key, func(ctx context.Context) ([]services.DayTurnover, error) {
		totals, err := h.reader.ArchivedTotals(ctx, services.WeekWindow(now))
		if err != nil {
			return nil, err
		}
		return services.WeeklyTurnover(totals, now), nil
	})
}
