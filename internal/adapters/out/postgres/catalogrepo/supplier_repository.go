package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormSupplierRepository struct {
	db *gorm.DB
}

func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

func (r *GormSupplierRepository) Add(ctx context.Context, supplier *catalog.Supplier) error {
	if err := supplier.Validate(); err != nil {
		return err
	}

	dto := supplierFromDomain(supplier)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("supplier %q already exists", dto.Name))
		}
		return err
	}
	return nil
}

func (r *GormSupplierRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Supplier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SupplierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("supplier", id.String())
		}
		return nil, err
	}

	return supplierToDomain(dto)
}
