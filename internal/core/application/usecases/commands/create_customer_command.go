package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a customer company under a fresh identifier.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	companyName string
	personName  string
	email       string

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(companyName, personName, email string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		customerID: kernel.NewUUID(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCompanyName(companyName),
		cmd.setPersonName(personName),
		cmd.setEmail(email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateCustomerCommand) CompanyName() string {
	return c.companyName
}

func (c CreateCustomerCommand) PersonName() string {
	return c.personName
}

func (c CreateCustomerCommand) Email() string {
	return c.email
}

func (c *CreateCustomerCommand) setCompanyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("company name")
	}

	c.companyName = name
	return nil
}

func (c *CreateCustomerCommand) setPersonName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("person name")
	}

	c.personName = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredError("email")
	}

	c.email = email
	return nil
}
