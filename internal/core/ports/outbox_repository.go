package ports

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/outbox"
)

// OutboxRepository stores export records written next to archivals.
//
// Example:
//
//	records, err := uow.OutboxRepository().FetchDue(ctx, now, 50)
//	if err != nil {
//	    return err
//	}
//	for _, r := range records {
//	    // export, then MarkSent or MarkFailed in the same transaction
//	}
type OutboxRepository interface {
	// Add stores a new record. It must run in the transaction of the archival.
	Add(ctx context.Context, record *outbox.Record) error

	// FetchDue returns at most limit unsent records due at or before now,
	// oldest first. Parked records are never returned. Rows are claimed until
	// the transaction ends, so concurrent dispatchers skip them.
	FetchDue(ctx context.Context, now time.Time, limit int) ([]*outbox.Record, error)

	// MarkSent persists a record after a successful export.
	// Returns ObjectNotFoundError if the record is gone.
	MarkSent(ctx context.Context, record *outbox.Record) error

	// MarkFailed persists the attempt count, error and next attempt of a
	// failed export.
	MarkFailed(ctx context.Context, record *outbox.Record) error
}
