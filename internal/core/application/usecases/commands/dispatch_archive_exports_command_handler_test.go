package commands_test

import (
	"errors"
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/outbox"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOutboxRecord(t *testing.T) *outbox.Record {
	t.Helper()
	o := newOrderInStage(t, order.Archived)
	r, err := outbox.NewRecord(kernel.NewUUID(), o.Snapshot(), testNow.Add(-time.Minute))
	require.NoError(t, err)
	return r
}

func snapshotOf(r *outbox.Record) any {
	return mock.MatchedBy(func(s order.Snapshot) bool {
		return s.ID == r.OrderID().String()
	})
}

func TestDispatchArchiveExportsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	sent, retried, parked := newOutboxRecord(t), newOutboxRecord(t), newOutboxRecord(t)
	// two earlier failures leave parked one attempt short of the limit
	parked.MarkFailed(errors.New("earlier"), testNow.Add(-time.Minute), outbox.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second, MaxDelay: time.Second})
	parked.MarkFailed(errors.New("earlier"), testNow.Add(-time.Minute), outbox.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Second, MaxDelay: time.Second})

	policy := outbox.RetryPolicy{MaxAttempts: 3, BaseDelay: 30 * time.Second, MaxDelay: time.Hour}
	cmd, err := commands.NewDispatchArchiveExportsCommand(10)
	require.NoError(t, err)

	repo := new(MockOutboxRepository)
	repo.On("FetchDue", ctx, testNow, 10).Return([]*outbox.Record{sent, retried, parked}, nil).Once()
	repo.On("MarkSent", ctx, sent).Return(nil).Once()
	repo.On("MarkFailed", ctx, retried).Return(nil).Once()
	repo.On("MarkFailed", ctx, parked).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	exporter := new(MockExporter)
	exporter.On("Export", ctx, snapshotOf(sent)).Return(nil).Once()
	exporter.On("Export", ctx, snapshotOf(retried)).Return(errors.New("broker unreachable")).Once()
	exporter.On("Export", ctx, snapshotOf(parked)).Return(errors.New("broker unreachable")).Once()

	h := commands.NewDispatchArchiveExportsCommandHandler(factory, exporter, policy, fixedClock(), discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrExportFailure)
	assert.Contains(t, err.Error(), retried.OrderID().String())
	assert.Contains(t, err.Error(), parked.OrderID().String())
	assert.Equal(t, commands.DispatchResult{Fetched: 3, Sent: 1, Failed: 2, Parked: 1}, result)

	require.NotNil(t, sent.SentAt())
	assert.Equal(t, testNow, *sent.SentAt())

	assert.Equal(t, 1, retried.Attempts())
	require.NotNil(t, retried.NextAttemptAt())
	assert.Equal(t, testNow.Add(30*time.Second), *retried.NextAttemptAt())
	assert.Equal(t, "broker unreachable", retried.LastError())

	assert.True(t, parked.IsParked())
	assert.Equal(t, 3, parked.Attempts())

	repo.AssertExpectations(t)
	exporter.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDispatchArchiveExportsCommandHandler_Handle_NothingDue(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDispatchArchiveExportsCommand(commands.DefaultExportBatchSize)

	repo := new(MockOutboxRepository)
	repo.On("FetchDue", ctx, testNow, commands.DefaultExportBatchSize).Return([]*outbox.Record{}, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()
	exporter := new(MockExporter)

	h := commands.NewDispatchArchiveExportsCommandHandler(factory, exporter, outbox.DefaultRetryPolicy(), fixedClock(), discardLogger())
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, result)
	exporter.AssertNotCalled(t, "Export", mock.Anything, mock.Anything)
}

func TestDispatchArchiveExportsCommandHandler_Handle_MarkSentError(t *testing.T) {
	ctx := t.Context()
	record := newOutboxRecord(t)
	cmd, _ := commands.NewDispatchArchiveExportsCommand(1)

	repo := new(MockOutboxRepository)
	repo.On("FetchDue", ctx, testNow, 1).Return([]*outbox.Record{record}, nil).Once()
	repo.On("MarkSent", ctx, record).Return(errors.New("write failed")).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(repo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()
	exporter := new(MockExporter)
	exporter.On("Export", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewDispatchArchiveExportsCommandHandler(factory, exporter, outbox.DefaultRetryPolicy(), fixedClock(), discardLogger())
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "write failed")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
