package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetTopItemsQueryIsNotConstructed = errors.New(
	"GetTopItemsQuery must be created via NewGetTopItemsQuery constructor",
)

// GetTopItemsQuery ranks catalog items by quantity sold in archived orders
// within an optional calendar window. Dates are YYYY-MM-DD (DD/MM/YYYY is
// still accepted); an empty from starts at the first archived order and an
// empty to ends now.
//
// Example:
//
//	query := NewGetTopItemsQuery("2023-01-01", "2023-01-31")
//	report, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Names[1], report.Quantities[1])
type GetTopItemsQuery struct {
	period

	guard guard.ConstructorGuard
}

func NewGetTopItemsQuery(from, to string) GetTopItemsQuery {
	return GetTopItemsQuery{
		period: newPeriod(from, to),
		guard:  guard.NewConstructorGuard(),
	}
}

func (q GetTopItemsQuery) Validate() error {
	return q.guard.Validate(ErrGetTopItemsQueryIsNotConstructed)
}
