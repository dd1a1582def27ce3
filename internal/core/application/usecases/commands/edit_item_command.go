package commands

import (
	"errors"
	"fmt"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrEditItemCommandIsNotConstructed = errors.New(
	"EditItemCommand must be created via NewEditItemCommand constructor",
)

// EditItemCommand changes the name, category and price of an item. Stock is
// moved only by orders and RestockItemCommand.
//
// Example:
//
//	cmd, err := NewEditItemCommand(itemID, "Stretch film 23µm", "Packaging", kernel.MustMoney("7.90"))
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type EditItemCommand struct { //nolint:recvcheck //using for validation
	itemID   kernel.UUID
	name     string
	category string
	price    kernel.Money

	guard guard.ConstructorGuard
}

func NewEditItemCommand(itemID kernel.UUID, name, category string, price kernel.Money) (EditItemCommand, error) {
	cmd := EditItemCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setItemID(itemID),
		cmd.setName(name),
		cmd.setCategory(category),
		cmd.setPrice(price),
	); err != nil {
		return EditItemCommand{}, err
	}

	return cmd, nil
}

func (c EditItemCommand) Validate() error {
	return c.guard.Validate(ErrEditItemCommandIsNotConstructed)
}

func (c EditItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c EditItemCommand) Name() string {
	return c.name
}

func (c EditItemCommand) Category() string {
	return c.category
}

func (c EditItemCommand) Price() kernel.Money {
	return c.price
}

func (c *EditItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}

func (c *EditItemCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *EditItemCommand) setCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return errs.NewValueIsRequiredError("category")
	}

	c.category = category
	return nil
}

func (c *EditItemCommand) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", price))
	}

	c.price = price
	return nil
}
