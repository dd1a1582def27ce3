package commands

import (
	"context"

	"warehouse/internal/core/domain/model/catalog"
)

type CreateCustomerCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CatalogUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	customer, err := catalog.NewCustomer(cmd.CustomerID(), cmd.CompanyName(), cmd.PersonName(), cmd.Email())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CustomerRepository().Add(ctx, customer); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
