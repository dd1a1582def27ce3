package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrIncompleteOrderCommandIsNotConstructed = errors.New(
	"IncompleteOrderCommand must be created via NewIncompleteOrderCommand constructor",
)

// IncompleteOrderCommand reopens a Closed order that was completed
// by mistake. Archived orders cannot be reopened.
type IncompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewIncompleteOrderCommand(orderID kernel.UUID) (IncompleteOrderCommand, error) {
	cmd := IncompleteOrderCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setOrderID(orderID); err != nil {
		return IncompleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c IncompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrIncompleteOrderCommandIsNotConstructed)
}

func (c IncompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *IncompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
