package queries

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrGetItemQueryIsNotConstructed = errors.New(
	"GetItemQuery must be created via NewGetItemQuery constructor",
)

// GetItemQuery loads one item by id. Reading takes no lock, so the stock
// shown may already be reserved by an order in flight.
type GetItemQuery struct {
	itemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetItemQuery(itemID kernel.UUID) (GetItemQuery, error) {
	if err := itemID.Validate(); err != nil {
		return GetItemQuery{}, err
	}

	return GetItemQuery{
		itemID: itemID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetItemQuery) Validate() error {
	return q.guard.Validate(ErrGetItemQueryIsNotConstructed)
}

func (q GetItemQuery) ItemID() kernel.UUID {
	return q.itemID
}

// GetItemQueryResponse shows an item with its current price and stock.
type GetItemQueryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Price      string `json:"price"`
	Stock      int    `json:"stock"`
	SupplierID string `json:"supplierId"`
}
