package postgres_test

import (
	"context"
	"errors"
	"io"
	"log/slog"

	postgresadapter "warehouse/internal/adapters/out/postgres"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/order"
)

type outboxFactory struct{ *postgresadapter.GormUnitOfWorkFactory }

func (f outboxFactory) Create() commands.OutboxUoW { return f.GormUnitOfWorkFactory.Create() }

type failingExporter struct{}

func (failingExporter) Export(context.Context, order.Snapshot) error {
	return errors.New("sink unavailable")
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
