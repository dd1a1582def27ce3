package catalog

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the company an order is placed for. Company names are unique.
type Customer struct {
	id          kernel.UUID
	companyName string
	personName  string
	email       string

	guard guard.ConstructorGuard
}

func NewCustomer(id kernel.UUID, companyName, personName, email string) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setID(id),
		c.setCompanyName(companyName),
		c.setPersonName(personName),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) CompanyName() string {
	return c.companyName
}

func (c *Customer) PersonName() string {
	return c.personName
}

func (c *Customer) Email() string {
	return c.email
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setCompanyName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("company name")
	}
	c.companyName = name
	return nil
}

func (c *Customer) setPersonName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("person name")
	}
	c.personName = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	c.email = email
	return nil
}
