package commands

import (
	"errors"
	"slices"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand places a new order for a customer. The draft lives only
// in this command; nothing is stored until the handler commits.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, []LineInput{
//	    {ItemID: palletJackID, Quantity: 2},
//	    {ItemID: shrinkWrapID, Quantity: 40},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID kernel.UUID
	lines      []LineInput

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the ids and lines. Repeated items are merged.
func NewCreateOrderCommand(orderID, customerID kernel.UUID, lines []LineInput) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Lines returns the merged line inputs.
func (c CreateOrderCommand) Lines() []LineInput {
	return slices.Clone(c.lines)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setLines(lines []LineInput) error {
	merged, err := normalizeLines(lines)
	if err != nil {
		return err
	}

	c.lines = merged
	return nil
}
