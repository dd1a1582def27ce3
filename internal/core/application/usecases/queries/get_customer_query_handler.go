package queries

import (
	"context"

	"warehouse/internal/core/ports"
)

type GetCustomerQueryHandler struct {
	reader ports.CatalogReader
}

func NewGetCustomerQueryHandler(reader ports.CatalogReader) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{reader: reader}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (GetCustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerQueryResponse{}, err
	}

	customer, err := h.reader.GetCustomer(ctx, query.CustomerID())
	if err != nil {
		return GetCustomerQueryResponse{}, err
	}

	return GetCustomerQueryResponse{
		ID:          customer.ID().String(),
		CompanyName: customer.CompanyName(),
		PersonName:  customer.PersonName(),
		Email:       customer.Email(),
	}, nil
}
