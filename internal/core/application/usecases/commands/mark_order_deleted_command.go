package commands

import (
	"errors"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrMarkOrderDeletedCommandIsNotConstructed = errors.New(
	"MarkOrderDeletedCommand must be created via NewMarkOrderDeletedCommand constructor",
)

// MarkOrderDeletedCommand soft deletes an order from any stage.
//
// A command built with NewMarkStaleOrderDeletedCommand only applies while the
// order is still Open and was last updated before idleBefore.
type MarkOrderDeletedCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	idleBefore time.Time

	guard guard.ConstructorGuard
}

func NewMarkOrderDeletedCommand(orderID kernel.UUID) (MarkOrderDeletedCommand, error) {
	cmd := MarkOrderDeletedCommand{guard: guard.NewConstructorGuard()}

	if err := cmd.setOrderID(orderID); err != nil {
		return MarkOrderDeletedCommand{}, err
	}

	return cmd, nil
}

// NewMarkStaleOrderDeletedCommand deletes the order only if it is still an
// Open order idle since before idleBefore when the delete runs.
func NewMarkStaleOrderDeletedCommand(orderID kernel.UUID, idleBefore time.Time) (MarkOrderDeletedCommand, error) {
	if idleBefore.IsZero() {
		return MarkOrderDeletedCommand{}, errs.NewValueIsRequiredError("idle before")
	}

	cmd, err := NewMarkOrderDeletedCommand(orderID)
	if err != nil {
		return MarkOrderDeletedCommand{}, err
	}
	cmd.idleBefore = idleBefore
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderDeletedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeletedCommandIsNotConstructed)
}

func (c MarkOrderDeletedCommand) OrderID() kernel.UUID {
	return c.orderID
}

// IdleBefore is the staleness cutoff, zero for an unconditional delete.
func (c MarkOrderDeletedCommand) IdleBefore() time.Time {
	return c.idleBefore
}

// Applies reports whether o still matches the command's precondition.
func (c MarkOrderDeletedCommand) Applies(o *order.Order) bool {
	if c.idleBefore.IsZero() {
		return true
	}
	return o.Stage() == order.Open && o.UpdatedOn().Before(c.idleBefore)
}

func (c *MarkOrderDeletedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
