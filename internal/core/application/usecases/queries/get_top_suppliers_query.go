package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetTopSuppliersQueryIsNotConstructed = errors.New(
	"GetTopSuppliersQuery must be created via NewGetTopSuppliersQuery constructor",
)

// GetTopSuppliersQuery ranks suppliers by the quantity of their items sold
// in archived orders.
type GetTopSuppliersQuery struct {
	period

	guard guard.ConstructorGuard
}

func NewGetTopSuppliersQuery(from, to string) GetTopSuppliersQuery {
	return GetTopSuppliersQuery{
		period: newPeriod(from, to),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q GetTopSuppliersQuery) Validate() error {
	return q.guard.Validate(ErrGetTopSuppliersQueryIsNotConstructed)
}
