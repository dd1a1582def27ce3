package commands

import (
	"context"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/outbox"
	"warehouse/internal/core/ports"
)

// ArchiveOrderCommandHandler archives a Closed order and queues its export.
//
// The export record is written in the archiving transaction; the export
// itself runs later in DispatchArchiveExportsCommandHandler, so a failing
// sink can never undo an archival.
//
// Example:
//
//	handler := NewArchiveOrderCommandHandler(uowFactory, clock)
//	cmd, _ := NewArchiveOrderCommand(orderID)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrInvalidStateTransition) {
//	    // order is not Closed
//	}
type ArchiveOrderCommandHandler struct {
	uowFactory ArchiveUoWFactory
	clock      ports.Clock
}

func NewArchiveOrderCommandHandler(uowFactory ArchiveUoWFactory, clock ports.Clock) ArchiveOrderCommandHandler {
	return ArchiveOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *ArchiveOrderCommandHandler) Handle(ctx context.Context, cmd ArchiveOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = o.Archive(now); err != nil {
		return err
	}

	record, err := outbox.NewRecord(kernel.NewUUID(), o.Snapshot(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
