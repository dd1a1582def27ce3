package commands

import (
	"errors"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrArchiveOrderCommandIsNotConstructed = errors.New(
	"ArchiveOrderCommand must be created via NewArchiveOrderCommand constructor",
)

// ArchiveOrderCommand moves a Closed order to Archived, where it
// starts counting towards turnover and is handed to the exporter.
type ArchiveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewArchiveOrderCommand(orderID kernel.UUID) (ArchiveOrderCommand, error) {
	cmd := ArchiveOrderCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setOrderID(orderID); err != nil {
		return ArchiveOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ArchiveOrderCommand) Validate() error {
	return c.guard.Validate(ErrArchiveOrderCommandIsNotConstructed)
}

func (c ArchiveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ArchiveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
