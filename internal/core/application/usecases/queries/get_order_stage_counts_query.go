package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetOrderStageCountsQueryIsNotConstructed = errors.New(
	"GetOrderStageCountsQuery must be created via NewGetOrderStageCountsQuery constructor",
)

// GetOrderStageCountsQuery counts orders per live stage within an optional
// calendar window. An empty from starts at the first order placed.
type GetOrderStageCountsQuery struct {
	period

	guard guard.ConstructorGuard
}

func NewGetOrderStageCountsQuery(from, to string) GetOrderStageCountsQuery {
	return GetOrderStageCountsQuery{
		period: newPeriod(from, to),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q GetOrderStageCountsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStageCountsQueryIsNotConstructed)
}
