package ports

import (
	"context"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
)

// ItemRepository persists catalog items and their stock.
type ItemRepository interface {
	// Add stores a new item. Returns ValueIsInvalidError if the name is taken.
	Add(ctx context.Context, item *catalog.Item) error

	// Update stores the item's current name, category, stock and price.
	// Returns ValueIsInvalidError if the new name is taken.
	Update(ctx context.Context, item *catalog.Item) error

	// Get loads an item and locks it until the transaction ends.
	// Returns ObjectNotFoundError if absent.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error)
}

// SupplierRepository persists suppliers. Supplier names are unique; Add
// returns ValueIsInvalidError for a taken name.
type SupplierRepository interface {
	Add(ctx context.Context, supplier *catalog.Supplier) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Supplier, error)
}

// CustomerRepository persists customers, unique by company name.
type CustomerRepository interface {
	Add(ctx context.Context, customer *catalog.Customer) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Customer, error)
}
