package commands

import (
	"context"

	"warehouse/internal/core/domain/model/catalog"
)

type CreateSupplierCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateSupplierCommandHandler(uowFactory CatalogUoWFactory) CreateSupplierCommandHandler {
	return CreateSupplierCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateSupplierCommandHandler) Handle(ctx context.Context, cmd CreateSupplierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	supplier, err := catalog.NewSupplier(cmd.SupplierID(), cmd.Name(), cmd.Email())
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

	if err = uow.SupplierRepository().Add(ctx, supplier); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
