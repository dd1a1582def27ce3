package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork per command, so concurrent
// commands never share a transaction.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Callers drive the
// transaction themselves.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().Get(ctx, orderID)
//	...
//	return uow.Commit(ctx)
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active, which a deferred
	// Rollback after Commit ignores.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// ItemRepository returns an ItemRepository bound to the current
	// transaction. Its Get locks the row until the transaction ends.
	ItemRepository() ItemRepository

	SupplierRepository() SupplierRepository
	CustomerRepository() CustomerRepository

	// OutboxRepository returns an OutboxRepository bound to the current
	// transaction, so export records commit together with the archival.
	OutboxRepository() OutboxRepository
}
