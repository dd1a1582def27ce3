package catalogrepo

import (
	"context"
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormItemRepository implements ports.ItemRepository.
//
// Get locks the row FOR UPDATE, so inside a transaction two orders reserving
// the same item are serialized instead of overwriting each other's stock.
type GormItemRepository struct {
	db *gorm.DB
}

func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

func (r *GormItemRepository) Add(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("item %q already exists", item.Name()))
		}
		return err
	}
	return nil
}

// Update writes the mutable columns of an existing item.
func (r *GormItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := itemFromDomain(item)
	result := r.db.WithContext(ctx).Model(&ItemDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":     dto.Name,
			"category": dto.Category,
			"price":    dto.Price,
			"stock":    dto.Stock,
		})
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("item %q already exists", item.Name()))
		}
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("item", item.ID().String())
	}
	return nil
}

func (r *GormItemRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Item, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ItemDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("item", id.String())
		}
		return nil, err
	}

	return itemToDomain(dto)
}
