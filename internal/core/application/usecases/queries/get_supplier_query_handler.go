package queries

import (
	"context"

	"warehouse/internal/core/ports"
)

type GetSupplierQueryHandler struct {
	reader ports.CatalogReader
}

func NewGetSupplierQueryHandler(reader ports.CatalogReader) GetSupplierQueryHandler {
	return GetSupplierQueryHandler{reader: reader}
}

func (h GetSupplierQueryHandler) Handle(ctx context.Context, query GetSupplierQuery) (GetSupplierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSupplierQueryResponse{}, err
	}

	supplier, err := h.reader.GetSupplier(ctx, query.SupplierID())
	if err != nil {
		return GetSupplierQueryResponse{}, err
	}

	return GetSupplierQueryResponse{
		ID:    supplier.ID().String(),
		Name:  supplier.Name(),
		Email: supplier.Email(),
	}, nil
}
