// Package export holds the sinks archived order snapshots are handed to by
// the export relay. Every sink tolerates the same snapshot being exported
// more than once.
package export
