package catalogrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCatalogReader implements ports.CatalogReader. Items are read without
// the row lock GormItemRepository.Get takes.
type GormCatalogReader struct {
	db        *gorm.DB
	suppliers *GormSupplierRepository
	customers *GormCustomerRepository
}

func NewGormCatalogReader(db *gorm.DB) *GormCatalogReader {
	return &GormCatalogReader{
		db:        db,
		suppliers: NewGormSupplierRepository(db),
		customers: NewGormCustomerRepository(db),
	}
}

func (r *GormCatalogReader) GetItem(ctx context.Context, id kernel.UUID) (*catalog.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}

func (r *GormCatalogReader) GetSupplier(ctx context.Context, id kernel.UUID) (*catalog.Supplier, error) {
	return r.suppliers.Get(ctx, id)
}

func (r *GormCatalogReader) GetCustomer(ctx context.Context, id kernel.UUID) (*catalog.Customer, error) {
	return r.customers.Get(ctx, id)
}
