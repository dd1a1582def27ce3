package postgres

import (
	"context"

	"warehouse/internal/adapters/out/postgres/catalogrepo"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/outboxrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns.
func Migrate(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(
		&catalogrepo.SupplierDTO{},
		&catalogrepo.CustomerDTO{},
		&catalogrepo.ItemDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&outboxrepo.RecordDTO{},
	)
}
