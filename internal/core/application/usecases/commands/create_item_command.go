package commands

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand adds a stocked item delivered by an existing supplier.
//
// Example:
//
//	cmd, err := NewCreateItemCommand("Stretch film", "Packaging", kernel.MustMoney("7.40"), 500, supplierID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID     kernel.UUID
	name       string
	category   string
	price      kernel.Money
	stock      int
	supplierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateItemCommand(
	name, category string,
	price kernel.Money,
	stock int,
	supplierID kernel.UUID,
) (CreateItemCommand, error) {
	cmd := CreateItemCommand{
		itemID: kernel.NewUUID(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setPrice(price),
		cmd.setStock(stock),
		cmd.setSupplierID(supplierID),
	); err != nil {
		return CreateItemCommand{}, err
	}

	return cmd, nil
}

func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateItemCommand) Name() string {
	return c.name
}

func (c CreateItemCommand) Category() string {
	return c.category
}

func (c CreateItemCommand) Price() kernel.Money {
	return c.price
}

func (c CreateItemCommand) Stock() int {
	return c.stock
}

func (c CreateItemCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

func (c *CreateItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateItemCommand) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}

func (c *CreateItemCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", price))
	}

	c.price = price
	return nil
}

func (c *CreateItemCommand) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock", fmt.Errorf("%d is negative", stock))
	}

	c.stock = stock
	return nil
}

func (c *CreateItemCommand) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("supplier", err)
	}

	c.supplierID = supplierID
	return nil
}
