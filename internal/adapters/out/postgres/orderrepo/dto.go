// Package orderrepo persists order aggregates: one row per order in
// "orders" and one row per line in "order_lines".
package orderrepo

import (
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// OrderDTO is the "orders" row. Stage and DeletedFrom hold order.Stage values;
// Version is bumped by every successful update.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedOn   time.Time       `gorm:"not null;index"`
	UpdatedOn   time.Time       `gorm:"not null;index"`
	Stage       int             `gorm:"type:smallint;not null;index"`
	DeletedFrom int             `gorm:"type:smallint;not null;default:0"`
	Version     int             `gorm:"not null;default:0"`
	Lines       []OrderLineDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is the "order_lines" row. Position keeps the order of lines.
type OrderLineDTO struct {
	OrderID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ItemID    uuid.UUID       `gorm:"type:uuid;primaryKey;index"`
	Position  int             `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	return OrderDTO{
		ID:          orderID,
		CustomerID:  o.CustomerID().Bytes(),
		Total:       o.Total().Decimal(),
		CreatedOn:   o.CreatedOn(),
		UpdatedOn:   o.UpdatedOn(),
		Stage:       int(o.Stage()),
		DeletedFrom: int(o.DeletedFrom()),
		Version:     o.Version(),
		Lines: lo.Map(o.Lines(), func(l order.Line, i int) OrderLineDTO {
			return OrderLineDTO{
				OrderID:   orderID,
				ItemID:    l.ItemID().Bytes(),
				Position:  i,
				Quantity:  l.Quantity(),
				UnitPrice: l.UnitPrice().Decimal(),
			}
		}),
	}
}

// toDomain restores the aggregate; dto.Lines must be sorted by Position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		line, lineErr := lineToDomain(l)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(
		id,
		customerID,
		lines,
		dto.CreatedOn,
		dto.UpdatedOn,
		order.Stage(dto.Stage),
		order.Stage(dto.DeletedFrom),
		dto.Version,
	)
}

func lineToDomain(dto OrderLineDTO) (order.Line, error) {
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return order.Line{}, err
	}

	price, err := kernel.NewMoney(dto.UnitPrice)
	if err != nil {
		return order.Line{}, err
	}

	return order.NewLine(itemID, dto.Quantity, price)
}
