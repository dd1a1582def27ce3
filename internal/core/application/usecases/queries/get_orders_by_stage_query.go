package queries

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

const (
	// DefaultPageSize applies when a listing asks for size 0.
	DefaultPageSize = 20
	// MaxPageSize caps a single listing page.
	MaxPageSize = 100
)

var ErrGetOrdersByStageQueryIsNotConstructed = errors.New(
	"GetOrdersByStageQuery must be created via NewGetOrdersByStageQuery constructor",
)

// listableStages are the stages an order listing can be filtered by.
// Deleted orders are only reachable by id.
var listableStages = map[string]order.Stage{
	"open":     order.Open,
	"closed":   order.Closed,
	"archived": order.Archived,
}

// GetOrdersByStageQuery pages through the orders of one stage: open orders
// newest created first, closed and archived orders most recently updated
// first. Pages are numbered from 1.
//
// Example:
//
//	query, err := NewGetOrdersByStageQuery("closed", 2, 20)
//	if err != nil {
//	    return err // unknown stage or bad paging
//	}
//	page, err := handler.Handle(ctx, query)
type GetOrdersByStageQuery struct { //nolint:recvcheck //using for validation
	stage order.Stage
	page  int
	size  int

	guard guard.ConstructorGuard
}

// NewGetOrdersByStageQuery accepts the stage name in any case. A zero page
// means the first page, a zero size DefaultPageSize.
func NewGetOrdersByStageQuery(stage string, page, size int) (GetOrdersByStageQuery, error) {
	q := GetOrdersByStageQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		q.setStage(stage),
		q.setPage(page),
		q.setSize(size),
	); err != nil {
		return GetOrdersByStageQuery{}, err
	}

	return q, nil
}

func (q GetOrdersByStageQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStageQueryIsNotConstructed)
}

func (q GetOrdersByStageQuery) Stage() order.Stage {
	return q.stage
}

func (q GetOrdersByStageQuery) Page() int {
	return q.page
}

func (q GetOrdersByStageQuery) Size() int {
	return q.size
}

// Offset is the number of orders on the pages before this one.
func (q GetOrdersByStageQuery) Offset() int {
	return (q.page - 1) * q.size
}

func (q *GetOrdersByStageQuery) setStage(stage string) error {
	s, ok := listableStages[strings.ToLower(strings.TrimSpace(stage))]
	if !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage",
			fmt.Errorf("%q is not one of open, closed, archived", stage))
	}

	q.stage = s
	return nil
}

func (q *GetOrdersByStageQuery) setPage(page int) error {
	if page < 0 {
		return errs.NewValueIsInvalidErrorWithCause("page", fmt.Errorf("%d is negative", page))
	}
	if page == 0 {
		page = 1
	}

	q.page = page
	return nil
}

func (q *GetOrdersByStageQuery) setSize(size int) error {
	if size == 0 {
		size = DefaultPageSize
	}
	if size < 1 || size > MaxPageSize {
		return errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize)
	}

	q.size = size
	return nil
}

// GetOrdersByStageQueryResponse is one page of a stage listing. Total counts
// every order in the stage.
type GetOrdersByStageQueryResponse struct {
	Stage  string                  `json:"stage"`
	Page   int                     `json:"page"`
	Size   int                     `json:"size"`
	Total  int64                   `json:"total"`
	Orders []GetOrderQueryResponse `json:"orders"`
}
