package orderrepo

import (
	"context"
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderReader implements ports.OrderReader on the same tables as
// GormOrderRepository.
type GormOrderReader struct {
	db *gorm.DB
}

func NewGormOrderReader(db *gorm.DB) *GormOrderReader {
	return &GormOrderReader{db: db}
}

func (r *GormOrderReader) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", byPosition).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListByStage pages through the orders in stage. Ties on the sort column
// are broken by id so that pages never overlap.
func (r *GormOrderReader) ListByStage(
	ctx context.Context,
	stage order.Stage,
	limit, offset int,
) ([]*order.Order, int64, error) {
	if err := stage.Validate(); err != nil {
		return nil, 0, err
	}

	sortColumn := "updated_on"
	if stage == order.Open {
		sortColumn = "created_on"
	}

	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&OrderDTO{}).Where("stage = ?", int(stage)).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var dtos []OrderDTO
	err := db.Preload("Lines", byPosition).
		Where("stage = ?", int(stage)).
		Order(sortColumn + " DESC").
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&dtos).Error
	if err != nil {
		return nil, 0, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return nil, 0, convErr
		}
		orders = append(orders, o)
	}
	return orders, total, nil
}

func byPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
