// Package kernel provides the value objects shared by every part of the
// warehouse domain model.
//
// The package includes:
//   - UUID: identifier value object for orders, items, suppliers and customers
//   - Money: non-negative monetary amount backed by exact decimal arithmetic
//
// Both are immutable and safe for concurrent use.
package kernel
