package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/metrics"
)

// Dispatcher runs one export relay pass.
type Dispatcher interface {
	Handle(ctx context.Context, cmd commands.DispatchArchiveExportsCommand) (commands.DispatchResult, error)
}

// ArchiveExportJob periodically exports archived orders queued in the outbox.
type ArchiveExportJob struct {
	handler   Dispatcher
	spec      string
	batchSize int
	metrics   *metrics.Metrics
	scheduler *scheduler
	logger    *slog.Logger
}

// NewArchiveExportJob creates the export relay. Each tick of spec exports at
// most batchSize due records.
//
// Example:
//
//	job := jobs.NewArchiveExportJob(handler, "*/10 * * * * *", 50, m, logger)
//	manager := jobs.NewJobManager(cleanupJob, job)
func NewArchiveExportJob(
	handler Dispatcher,
	spec string,
	batchSize int,
	m *metrics.Metrics,
	logger *slog.Logger,
) *ArchiveExportJob {
	logger = logger.With("component", "archive_export_job")
	return &ArchiveExportJob{
		handler:   handler,
		spec:      spec,
		batchSize: batchSize,
		metrics:   m,
		scheduler: newScheduler(logger),
		logger:    logger,
	}
}

// Start schedules the relay.
func (j *ArchiveExportJob) Start() error {
	if err := j.scheduler.start(j.spec, j.Run); err != nil {
		return fmt.Errorf("schedule %q: %w", j.spec, err)
	}
	j.logger.Info("Archive export job started", "spec", j.spec, "batch_size", j.batchSize)
	return nil
}

// Stop cancels a running relay pass and waits for it to return.
func (j *ArchiveExportJob) Stop() {
	j.scheduler.stop()
	j.logger.Info("Archive export job stopped")
}

// Run performs one relay pass. A pass where some exports failed is logged as
// a warning; those records are retried on a later tick.
func (j *ArchiveExportJob) Run(ctx context.Context) {
	cmd, err := commands.NewDispatchArchiveExportsCommand(j.batchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid export batch size", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	j.metrics.Exports.WithLabelValues(metrics.OutcomeSuccess).Add(float64(result.Sent))
	j.metrics.Exports.WithLabelValues(metrics.OutcomeFailure).Add(float64(result.Failed))

	switch {
	case errors.Is(err, errs.ErrExportFailure):
		// Individual failures are already logged and rescheduled by the handler.
		j.logger.WarnContext(ctx, "Archive export finished with failures",
			"sent", result.Sent,
			"failed", result.Failed,
			"parked", result.Parked,
		)
	case err != nil:
		j.logger.ErrorContext(ctx, "Archive export failed", "error", err)
	case result.Fetched > 0:
		j.logger.InfoContext(ctx, "Archive export finished", "sent", result.Sent)
	}
}
