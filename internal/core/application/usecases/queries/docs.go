// Package queries contains the read side of the service: turnover rankings,
// the weekly rollup, the order stage dashboard and lookups of single orders,
// order listings per stage and catalog entries.
//
// Report handlers read through ports.SalesReader and never load aggregates.
// Their results may be memoized in a ports.ReportCache; without one every
// call hits storage. Lookups and listings read through ports.OrderReader and
// ports.CatalogReader and are never cached.
package queries
