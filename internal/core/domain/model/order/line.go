package order

import (
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// Line prices one catalog item inside an order. The subtotal is fixed when
// the line is created from the unit price at order time, so later catalog
// price changes never alter historical turnover.
type Line struct {
	itemID    kernel.UUID
	quantity  int
	unitPrice kernel.Money
	subtotal  kernel.Money
}

// NewLine validates the item reference and quantity and computes the subtotal.
func NewLine(itemID kernel.UUID, quantity int, unitPrice kernel.Money) (Line, error) {
	if err := itemID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	if !unitPrice.IsPositive() {
		return Line{}, errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("%s is not greater than 0", unitPrice),
		)
	}

	return Line{
		itemID:    itemID,
		quantity:  quantity,
		unitPrice: unitPrice,
		subtotal:  unitPrice.Times(quantity),
	}, nil
}

func (l Line) ItemID() kernel.UUID {
	return l.itemID
}

func (l Line) Quantity() int {
	return l.quantity
}

func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l Line) Subtotal() kernel.Money {
	return l.subtotal
}

// mergeLines folds lines for the same item into one, summing quantities at
// the first line's unit price. Input order is kept.
func mergeLines(lines []Line) ([]Line, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}

	merged := make([]Line, 0, len(lines))
	index := make(map[kernel.UUID]int, len(lines))
	for _, l := range lines {
		if l.quantity == 0 {
			return nil, errs.NewValueIsInvalidError("line must be created via NewLine")
		}
		if i, ok := index[l.itemID]; ok {
			combined, err := NewLine(l.itemID, merged[i].quantity+l.quantity, merged[i].unitPrice)
			if err != nil {
				return nil, err
			}
			merged[i] = combined
			continue
		}
		index[l.itemID] = len(merged)
		merged = append(merged, l)
	}
	return merged, nil
}
