package ports

import (
	"context"

	"warehouse/internal/core/domain/model/order"
)

// OrderExporter hands the snapshot of an archived order to an external sink.
// Implementations must be safe to call again for the same order: the outbox
// delivers at least once.
type OrderExporter interface {
	// Export writes one snapshot. Returns an ExportFailureError when the sink
	// rejects it; the dispatcher then schedules a retry.
	//
	// Example:
	//
	//	snapshot, err := record.Snapshot()
	//	...
	//	if err := exporter.Export(ctx, snapshot); err != nil {
	//	    record.MarkFailed(err, now, policy)
	//	}
	Export(ctx context.Context, snapshot order.Snapshot) error
}
