package catalog

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a stocked catalog article delivered by one supplier.
//
// Item follows these invariants:
//   - Price is greater than 0
//   - Stock is never negative
//
// Example:
//
//	item, err := catalog.NewItem(kernel.NewUUID(), "Pallet jack", "Tools", kernel.MustMoney("349.00"), 12, supplierID)
//	if err != nil {
//	    return err
//	}
//	if err := item.Reserve(3); err != nil {
//	    return err // not enough stock
//	}
type Item struct {
	id         kernel.UUID
	name       string
	category   string
	price      kernel.Money
	stock      int
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewItem(
	id kernel.UUID,
	name, category string,
	price kernel.Money,
	stock int,
	supplierID kernel.UUID,
) (*Item, error) {
	i := &Item{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		i.setID(id),
		i.setName(name),
		i.setCategory(category),
		i.setPrice(price),
		i.setStock(stock),
		i.setSupplierID(supplierID),
	); err != nil {
		return nil, err
	}

	return i, nil
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Category() string {
	return i.category
}

// Price is the current selling price. Existing order lines keep the price
// they were created with.
func (i *Item) Price() kernel.Money {
	return i.price
}

func (i *Item) Stock() int {
	return i.stock
}

func (i *Item) SupplierID() kernel.UUID {
	return i.supplierID
}

// Reserve takes quantity units out of stock.
func (i *Item) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > i.stock {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, i.stock)
	}
	i.stock -= quantity
	return nil
}

// Restock puts quantity units back into stock.
func (i *Item) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > math.MaxInt-i.stock {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, math.MaxInt-i.stock)
	}
	i.stock += quantity
	return nil
}

// Edit replaces name, category and price. The item is left unchanged when any
// of them is invalid.
func (i *Item) Edit(name, category string, price kernel.Money) error {
	edited := *i
	if err := errors.Join(
		edited.setName(name),
		edited.setCategory(category),
		edited.setPrice(price),
	); err != nil {
		return err
	}
	*i = edited
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	i.category = category
	return nil
}

func (i *Item) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", price))
	}
	i.price = price
	return nil
}

func (i *Item) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsOutOfRangeError("stock", stock, 0, math.MaxInt)
	}
	i.stock = stock
	return nil
}

func (i *Item) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplier", err)
	}
	i.supplierID = supplierID
	return nil
}
