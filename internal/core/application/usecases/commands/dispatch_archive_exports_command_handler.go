package commands

import (
	"context"
	"errors"
	"log/slog"

	"warehouse/internal/core/domain/model/outbox"
	"warehouse/internal/core/ports"
	"warehouse/internal/pkg/errs"
)

// DispatchResult summarizes one relay run.
type DispatchResult struct {
	Fetched int
	Sent    int
	Failed  int
	Parked  int
}

// DispatchArchiveExportsCommandHandler hands archived order snapshots from
// the outbox to the exporter.
//
// Records are claimed inside one transaction so that concurrent relays skip
// each other's rows. Failed exports are rescheduled or parked according to
// the retry policy and reported as ExportFailureError; the archived orders
// themselves are never touched. Exporters must tolerate a repeated export
// because a failed commit leaves sent records due again.
type DispatchArchiveExportsCommandHandler struct {
	uowFactory OutboxUoWFactory
	exporter   ports.OrderExporter
	policy     outbox.RetryPolicy
	clock      ports.Clock
	logger     *slog.Logger
}

func NewDispatchArchiveExportsCommandHandler(
	uowFactory OutboxUoWFactory,
	exporter ports.OrderExporter,
	policy outbox.RetryPolicy,
	clock ports.Clock,
	logger *slog.Logger,
) DispatchArchiveExportsCommandHandler {
	return DispatchArchiveExportsCommandHandler{
		uowFactory: uowFactory,
		exporter:   exporter,
		policy:     policy,
		clock:      clock,
		logger:     logger.With("component", "archive_export"),
	}
}

func (h *DispatchArchiveExportsCommandHandler) Handle(
	ctx context.Context,
	cmd DispatchArchiveExportsCommand,
) (DispatchResult, error) {
	if err := cmd.Validate(); err != nil {
		return DispatchResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return DispatchResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	records, err := repo.FetchDue(ctx, h.clock.Now(), cmd.BatchSize())
	if err != nil {
		return DispatchResult{}, err
	}

	result := DispatchResult{Fetched: len(records)}
	var failures []error
	for _, record := range records {
		exportErr := h.export(ctx, record)
		now := h.clock.Now()

		if exportErr == nil {
			record.MarkSent(now)
			if err = repo.MarkSent(ctx, record); err != nil {
				return result, err
			}
			result.Sent++
			h.logger.InfoContext(ctx, "order exported", "order_id", record.OrderID().String())
			continue
		}

		record.MarkFailed(exportErr, now, h.policy)
		if err = repo.MarkFailed(ctx, record); err != nil {
			return result, err
		}
		result.Failed++
		if record.IsParked() {
			result.Parked++
		}

		failure := errs.NewExportFailureError(record.OrderID().String(), exportErr)
		failures = append(failures, failure)
		h.logger.ErrorContext(ctx, "order export failed",
			"order_id", record.OrderID().String(),
			"attempts", record.Attempts(),
			"parked", record.IsParked(),
			"error", exportErr,
		)
	}

	if err = uow.Commit(ctx); err != nil {
		return result, err
	}

	return result, errors.Join(failures...)
}

func (h *DispatchArchiveExportsCommandHandler) export(ctx context.Context, record *outbox.Record) error {
	snapshot, err := record.Snapshot()
	if err != nil {
		return err
	}
	return h.exporter.Export(ctx, snapshot)
}
