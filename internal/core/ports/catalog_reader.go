package ports

import (
	"context"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
)

// CatalogReader loads catalog entries for display without locking them.
// Every method returns ObjectNotFoundError when the id is unknown.
type CatalogReader interface {
	GetItem(ctx context.Context, id kernel.UUID) (*catalog.Item, error)
	GetSupplier(ctx context.Context, id kernel.UUID) (*catalog.Supplier, error)
	GetCustomer(ctx context.Context, id kernel.UUID) (*catalog.Customer, error)
}
