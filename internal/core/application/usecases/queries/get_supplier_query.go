package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetSupplierQueryIsNotConstructed = errors.New(
	"GetSupplierQuery must be created via NewGetSupplierQuery constructor",
)

// GetSupplierQuery loads one supplier by id.
type GetSupplierQuery struct {
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetSupplierQuery(supplierID kernel.UUID) (GetSupplierQuery, error) {
	if err := supplierID.Validate(); err != nil {
		return GetSupplierQuery{}, err
	}

	return GetSupplierQuery{
		supplierID: supplierID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetSupplierQuery) Validate() error {
	return q.guard.Validate(ErrGetSupplierQueryIsNotConstructed)
}

func (q GetSupplierQuery) SupplierID() kernel.UUID {
	return q.supplierID
}

type GetSupplierQueryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
