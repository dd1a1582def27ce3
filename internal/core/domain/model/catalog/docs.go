// Package catalog holds the reference aggregates orders point at: suppliers,
// the items they deliver and the customers who buy them.
//
// Items carry the stock that order placement reserves and deletion of
// never-archived orders returns.
package catalog
