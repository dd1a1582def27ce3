package queries

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one order with its lines, whatever its stage.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	o, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load order: %w", err)
//	}
//	fmt.Printf("order %s is %s, total %s\n", o.ID, o.Stage, o.Total)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the display form of an order. Money is rendered
// with two decimals; DeletedFrom is only set for deleted orders.
type GetOrderQueryResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customerId"`
	Stage       string              `json:"stage"`
	DeletedFrom string              `json:"deletedFrom,omitempty"`
	Total       string              `json:"total"`
	CreatedOn   time.Time           `json:"createdOn"`
	UpdatedOn   time.Time           `json:"updatedOn"`
	Lines       []OrderLineResponse `json:"lines"`
}

type OrderLineResponse struct {
	ItemID    string `json:"itemId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
	Subtotal  string `json:"subtotal"`
}

func orderResponse(o *order.Order) GetOrderQueryResponse {
	lines := make([]OrderLineResponse, 0, len(o.Lines()))
	for _, l := range o.Lines() {
		lines = append(lines, OrderLineResponse{
			ItemID:    l.ItemID().String(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().String(),
			Subtotal:  l.Subtotal().String(),
		})
	}

	resp := GetOrderQueryResponse{
		ID:         o.ID().String(),
		CustomerID: o.CustomerID().String(),
		Stage:      o.Stage().String(),
		Total:      o.Total().String(),
		CreatedOn:  o.CreatedOn(),
		UpdatedOn:  o.UpdatedOn(),
		Lines:      lines,
	}
	if o.Deleted() {
		resp.DeletedFrom = o.DeletedFrom().String()
	}
	return resp
}
