package commands

import (
	"errors"
	"slices"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/guard"
)

var ErrEditOrderLinesCommandIsNotConstructed = errors.New(
	"EditOrderLinesCommand must be created via NewEditOrderLinesCommand constructor",
)

// EditOrderLinesCommand replaces all lines of an Open order.
type EditOrderLinesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	lines   []LineInput

	guard guard.ConstructorGuard
}

func NewEditOrderLinesCommand(orderID kernel.UUID, lines []LineInput) (EditOrderLinesCommand, error) {
	cmd := EditOrderLinesCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setLines(lines),
	); err != nil {
		return EditOrderLinesCommand{}, err
	}

	return cmd, nil
}

func (c EditOrderLinesCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderLinesCommandIsNotConstructed)
}

func (c EditOrderLinesCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c EditOrderLinesCommand) Lines() []LineInput {
	return slices.Clone(c.lines)
}

func (c *EditOrderLinesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderLinesCommand) setLines(lines []LineInput) error {
	merged, err := normalizeLines(lines)
	if err != nil {
		return err
	}

	c.lines = merged
	return nil
}
