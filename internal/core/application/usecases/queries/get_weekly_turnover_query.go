package queries

import (
	"errors"

	"warehouse/internal/pkg/guard"
)

var ErrGetWeeklyTurnoverQueryIsNotConstructed = errors.New(
	"GetWeeklyTurnoverQuery must be created via NewGetWeeklyTurnoverQuery constructor",
)

// GetWeeklyTurnoverQuery asks for the turnover of each of the last seven
// days, today included.
type GetWeeklyTurnoverQuery struct {
	guard guard.ConstructorGuard
}

func NewGetWeeklyTurnoverQuery() GetWeeklyTurnoverQuery {
	return GetWeeklyTurnoverQuery{guard: guard.NewConstructorGuard()}
}

func (q GetWeeklyTurnoverQuery) Validate() error {
	return q.guard.Validate(ErrGetWeeklyTurnoverQueryIsNotConstructed)
}
