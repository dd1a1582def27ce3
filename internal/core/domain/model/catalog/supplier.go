package catalog

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrSupplierIsNotConstructed = errors.New("Supplier must be created via NewSupplier constructor")

// Supplier delivers items to the warehouse. Names are unique.
type Supplier struct {
	id    kernel.UUID
	name  string
	email string

	guard guard.ConstructorGuard
}

func NewSupplier(id kernel.UUID, name, email string) (*Supplier, error) {
	s := &Supplier{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		s.setID(id),
		s.setName(name),
		s.setEmail(email),
	); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Supplier) Validate() error {
	if s == nil {
		return ErrSupplierIsNotConstructed
	}
	return s.guard.Validate(ErrSupplierIsNotConstructed)
}

func (s *Supplier) ID() kernel.UUID {
	return s.id
}

func (s *Supplier) Name() string {
	return s.name
}

func (s *Supplier) Email() string {
	return s.email
}

func (s *Supplier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Supplier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Supplier) setEmail(email string) error {
	email, err := normalizeEmail(email)
	if err != nil {
		return err
	}
	s.email = email
	return nil
}
