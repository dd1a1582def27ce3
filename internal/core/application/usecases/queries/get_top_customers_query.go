package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetTopCustomersQueryIsNotConstructed = errors.New(
	"GetTopCustomersQuery must be created via NewGetTopCustomersQuery constructor",
)

// GetTopCustomersQuery ranks customer companies by the quantity they bought.
// Two customers of the same company share one entry.
type GetTopCustomersQuery struct {
	period

	guard guard.ConstructorGuard
}

func NewGetTopCustomersQuery(from, to string) GetTopCustomersQuery {
	return GetTopCustomersQuery{
		period: newPeriod(from, to),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q GetTopCustomersQuery) Validate() error {
	return q.guard.Validate(ErrGetTopCustomersQueryIsNotConstructed)
}
