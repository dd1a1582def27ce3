// Package order provides the Order aggregate of the warehouse and its
// lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding customer, lines, totals, timestamps and stage
//   - Line: an order line pricing one catalog item at order time
//   - Stage: the lifecycle enum with its transition table
//   - Snapshot: the serializable view of an order handed to archival exporters
//
// Key business rules:
//   - Orders are created Open and must contain at least one line
//   - Open -> Closed (complete), Closed -> Open (incomplete), Closed -> Archived (archive)
//   - Any non-deleted stage -> Deleted (soft delete); deleting twice is a no-op
//   - Deleted is terminal, no field may change afterwards
//   - Every mutation moves UpdatedOn forward and never before CreatedOn
package order
