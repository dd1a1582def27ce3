package queries

import (
	"context"

	"warehouse/internal/core/ports"
)

type GetItemQueryHandler struct {
	reader ports.CatalogReader
}

func NewGetItemQueryHandler(reader ports.CatalogReader) GetItemQueryHandler {
	return GetItemQueryHandler{reader: reader}
}

func (h GetItemQueryHandler) Handle(ctx context.Context, query GetItemQuery) (GetItemQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetItemQueryResponse{}, err
	}

	item, err := h.reader.GetItem(ctx, query.ItemID())
	if err != nil {
		return GetItemQueryResponse{}, err
	}

	return GetItemQueryResponse{
		ID:         item.ID().String(),
		Name:       item.Name(),
		Category:   item.Category(),
		Price:      item.Price().String(),
		Stock:      item.Stock(),
		SupplierID: item.SupplierID().String(),
	}, nil
}
