package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/pkg/metrics"
)

// Sweeper runs one cleanup sweep.
type Sweeper interface {
	Handle(ctx context.Context, cmd commands.CleanupStaleOrdersCommand) (commands.SweepResult, error)
}

// OrderCleanupJob periodically soft deletes stale Open orders.
type OrderCleanupJob struct {
	handler   Sweeper
	spec      string
	threshold time.Duration
	metrics   *metrics.Metrics
	scheduler *scheduler
	logger    *slog.Logger
}

// NewOrderCleanupJob creates the cleanup job. Orders untouched for longer
// than threshold are deleted on every tick of spec. Returns a job that does
// nothing until Start.
//
// Example:
//
//	job := jobs.NewOrderCleanupJob(handler, "0 */5 * * * *", 30*time.Minute, m, logger)
//	if err := job.Start(); err != nil {
//	    return err
//	}
//	defer job.Stop()
func NewOrderCleanupJob(
	handler Sweeper,
	spec string,
	threshold time.Duration,
	m *metrics.Metrics,
	logger *slog.Logger,
) *OrderCleanupJob {
	logger = logger.With("component", "order_cleanup_job")
	return &OrderCleanupJob{
		handler:   handler,
		spec:      spec,
		threshold: threshold,
		metrics:   m,
		scheduler: newScheduler(logger),
		logger:    logger,
	}
}

// Start schedules the sweep.
func (j *OrderCleanupJob) Start() error {
	if err := j.scheduler.start(j.spec, j.Run); err != nil {
		return fmt.Errorf("schedule %q: %w", j.spec, err)
	}
	j.logger.Info("Order cleanup job started", "spec", j.spec, "threshold", j.threshold)
	return nil
}

// Stop cancels a running sweep and waits for it to return.
func (j *OrderCleanupJob) Stop() {
	j.scheduler.stop()
	j.logger.Info("Order cleanup job stopped")
}

// Run performs one sweep and records the deleted and failed counts, also
// for a sweep that stopped early. Errors are logged, never returned.
func (j *OrderCleanupJob) Run(ctx context.Context) {
	cmd, err := commands.NewCleanupStaleOrdersCommand(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid cleanup threshold", "error", err)
		return
	}

	result, err := j.handler.Handle(ctx, cmd)
	j.metrics.SweepDeleted.Add(float64(result.Deleted))
	j.metrics.SweepFailed.Add(float64(result.Failed))
	if err != nil {
		j.logger.ErrorContext(ctx, "Order cleanup failed", "error", err, "deleted", result.Deleted)
		return
	}

	if result.Selected > 0 {
		j.logger.InfoContext(ctx, "Order cleanup finished",
			"selected", result.Selected,
			"deleted", result.Deleted,
			"failed", result.Failed,
		)
	}
}
