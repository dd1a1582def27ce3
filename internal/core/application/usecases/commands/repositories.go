// Package commands contains the business operations that change warehouse
// state. Every handler validates its command, opens a unit of work, applies
// the domain change and commits; nothing is persisted on error.
package commands

import (
	"context"

	"warehouse/internal/core/ports"
)

// Unit of Work interfaces give each handler exactly the repositories it
// needs, all bound to one transaction.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	SupplierRepoFactory interface {
		SupplierRepository() ports.SupplierRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW covers transitions that touch the order only.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ArchiveUoW writes the archived order and its export record atomically.
	ArchiveUoW interface {
		TxManager
		OrderRepoFactory
		OutboxRepoFactory
	}

	ArchiveUoWFactory interface {
		Create() ArchiveUoW
	}

	// StockUoW covers order changes that move item stock.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   item, err := uow.ItemRepository().Get(ctx, itemID)
	//   // ... change both
	//
	//   err = uow.Commit(ctx)
	StockUoW interface {
		TxManager
		OrderRepoFactory
		ItemRepoFactory
		CustomerRepoFactory
	}

	StockUoWFactory interface {
		Create() StockUoW
	}

	// CatalogUoW registers suppliers, items and customers.
	CatalogUoW interface {
		TxManager
		ItemRepoFactory
		SupplierRepoFactory
		CustomerRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// OutboxUoW is used by the export relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
