package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCreateSupplierCommandIsNotConstructed = errors.New(
	"CreateSupplierCommand must be created via NewCreateSupplierCommand constructor",
)

// CreateSupplierCommand registers a supplier under a fresh identifier.
type CreateSupplierCommand struct { //nolint:recvcheck //using for validation
	supplierID kernel.UUID
	name       string
	email      string

	guard guard.ConstructorGuard
}

func NewCreateSupplierCommand(name, email string) (CreateSupplierCommand, error) {
	cmd := CreateSupplierCommand{
		supplierID: kernel.NewUUID(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
	); err != nil {
		return CreateSupplierCommand{}, err
	}

	return cmd, nil
}

func (c CreateSupplierCommand) Validate() error {
	return c.guard.Validate(ErrCreateSupplierCommandIsNotConstructed)
}

func (c CreateSupplierCommand) SupplierID() kernel.UUID {
	return c.supplierID
}

func (c CreateSupplierCommand) Name() string {
	return c.name
}

func (c CreateSupplierCommand) Email() string {
	return c.email
}

func (c *CreateSupplierCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *CreateSupplierCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
