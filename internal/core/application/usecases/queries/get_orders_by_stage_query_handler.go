package queries

import (
	"context"

	"warehouse/internal/core/ports"
)

// GetOrdersByStageQueryHandler lists orders through ports.OrderReader.
type GetOrdersByStageQueryHandler struct {
	reader ports.OrderReader
}

func NewGetOrdersByStageQueryHandler(reader ports.OrderReader) GetOrdersByStageQueryHandler {
	return GetOrdersByStageQueryHandler{reader: reader}
}

// Handle returns an empty page, not an error, past the last order.
func (h GetOrdersByStageQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStageQuery,
) (GetOrdersByStageQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersByStageQueryResponse{}, err
	}

	orders, total, err := h.reader.ListByStage(ctx, query.Stage(), query.Size(), query.Offset())
	if err != nil {
		return GetOrdersByStageQueryResponse{}, err
	}

	resp := GetOrdersByStageQueryResponse{
		Stage:  query.Stage().String(),
		Page:   query.Page(),
		Size:   query.Size(),
		Total:  total,
		Orders: make([]GetOrderQueryResponse, 0, len(orders)),
	}
	for _, o := range orders {
		resp.Orders = append(resp.Orders, orderResponse(o))
	}
	return resp, nil
}
