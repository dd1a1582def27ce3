package commands

import (
	"context"
	"log/slog"

	"warehouse/internal/core/ports"
)

// OrderDeleter deletes a single order; MarkOrderDeletedCommandHandler
// implements it.
type OrderDeleter interface {
	Handle(ctx context.Context, cmd MarkOrderDeletedCommand) (bool, error)
}

// SweepResult summarizes one cleanup run.
type SweepResult struct {
	Selected int
	Deleted  int
	Failed   int
}

// CleanupStaleOrdersCommandHandler soft deletes Open orders whose last update
// is older than the threshold.
//
// Candidates are read first, then each one is deleted in its own unit of
// work. The delete re-checks that the order is still Open and idle since
// before the cutoff, so an order completed or edited in between is skipped.
// One failure never stops the sweep.
type CleanupStaleOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	deleter    OrderDeleter
	clock      ports.Clock
	logger     *slog.Logger
}

func NewCleanupStaleOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	deleter OrderDeleter,
	clock ports.Clock,
	logger *slog.Logger,
) CleanupStaleOrdersCommandHandler {
	return CleanupStaleOrdersCommandHandler{
		uowFactory: uowFactory,
		deleter:    deleter,
		clock:      clock,
		logger:     logger.With("component", "order_cleanup"),
	}
}

func (h *CleanupStaleOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CleanupStaleOrdersCommand,
) (SweepResult, error) {
	if err := cmd.Validate(); err != nil {
		return SweepResult{}, err
	}

	upTo := h.clock.Now().Add(-cmd.Threshold())

	uow := h.uowFactory.Create()
	ids, err := uow.OrderRepository().FindStaleOpen(ctx, upTo)
	if err != nil {
		return SweepResult{}, err
	}

	result := SweepResult{Selected: len(ids)}
	if len(ids) == 0 {
		h.logger.InfoContext(ctx, "no stale orders", "idle_before", upTo)
		return result, nil
	}

	for _, id := range ids {
		if err = ctx.Err(); err != nil {
			return result, err
		}

		deleteCmd, cmdErr := NewMarkStaleOrderDeletedCommand(id, upTo)
		if cmdErr != nil {
			result.Failed++
			h.logger.ErrorContext(ctx, "sweep skipped order", "order_id", id.String(), "error", cmdErr)
			continue
		}

		deleted, delErr := h.deleter.Handle(ctx, deleteCmd)
		switch {
		case delErr != nil:
			result.Failed++
			h.logger.WarnContext(ctx, "sweep failed to delete order", "order_id", id.String(), "error", delErr)
		case deleted:
			result.Deleted++
			h.logger.InfoContext(ctx, "order marked deleted by sweep", "order_id", id.String())
		default:
			h.logger.DebugContext(ctx, "order no longer stale", "order_id", id.String())
		}
	}

	return result, nil
}
