// Package ports defines the contracts between the warehouse core and its
// adapters: repositories for aggregates, the read side used by reports and
// the outbound collaborators (exporter, clock, cache).
package ports

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the order only if the stored version still equals the
	// version the aggregate was loaded with. A lost race yields a
	// VersionIsInvalidError, a missing order an ObjectNotFoundError.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order with its lines. Returns ObjectNotFoundError if absent.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindStaleOpen returns the ids of Open orders last updated before upTo.
	// The ids are a snapshot: each delete must recheck the order, since it
	// may be completed or edited before the delete runs.
	//
	// Example:
	//
	//	cutoff := now.Add(-30 * time.Minute)
	//	ids, err := repo.FindStaleOpen(ctx, cutoff)
	//	if err != nil {
	//	    return err
	//	}
	//	for _, id := range ids {
	//	    cmd, _ := commands.NewMarkStaleOrderDeletedCommand(id, cutoff)
	//	    ...
	//	}
	FindStaleOpen(ctx context.Context, upTo time.Time) ([]kernel.UUID, error)
}
