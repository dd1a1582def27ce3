package outboxrepo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	postgresadapter "warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/outboxrepo"
	"warehouse/internal/adapters/out/postgres/pgtest"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/model/outbox"

	"github.com/stretchr/testify/suite"
)

var now = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	pg         *pgtest.Database
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.pg = pg

	suite.Require().NoError(postgresadapter.Migrate(ctx, pg.DB))
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.pg.Truncate("export_outbox"))
	suite.repository = outboxrepo.NewGormOutboxRepository(suite.pg.DB)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestFetchDue_SkipsSentParkedAndFuture() {
	ctx := suite.T().Context()
	policy := outbox.RetryPolicy{MaxAttempts: 1}

	due := suite.newRecord(now.Add(-time.Hour))
	dueLater := suite.newRecord(now.Add(-time.Minute))
	sent := suite.newRecord(now.Add(-time.Hour))
	sent.MarkSent(now)
	parked := suite.newRecord(now.Add(-time.Hour))
	parked.MarkFailed(errors.New("boom"), now, policy)
	future := suite.newRecord(now.Add(time.Hour))

	for _, r := range []*outbox.Record{dueLater, due, sent, parked, future} {
		suite.Require().NoError(suite.repository.Add(ctx, r))
	}

	records, err := suite.repository.FetchDue(ctx, now, 10)

	suite.Require().NoError(err)
	suite.Require().Len(records, 2)
	suite.True(records[0].ID().IsEqual(due.ID()))
	suite.True(records[1].ID().IsEqual(dueLater.ID()))

	snapshot, err := records[0].Snapshot()
	suite.Require().NoError(err)
	suite.Equal(due.OrderID().String(), snapshot.ID)
	suite.True(snapshot.Archived)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestFetchDue_RespectsLimit() {
	ctx := suite.T().Context()
	for i := range 3 {
		suite.Require().NoError(suite.repository.Add(ctx, suite.newRecord(now.Add(-time.Duration(i+1)*time.Minute))))
	}

	records, err := suite.repository.FetchDue(ctx, now, 2)

	suite.Require().NoError(err)
	suite.Len(records, 2)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestFetchDue_SkipsLockedRows() {
	ctx := suite.T().Context()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newRecord(now.Add(-time.Minute))))

	tx := suite.pg.DB.WithContext(ctx).Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	claimed, err := outboxrepo.NewGormOutboxRepository(tx).FetchDue(ctx, now, 10)
	suite.Require().NoError(err)
	suite.Require().Len(claimed, 1)

	others, err := suite.repository.FetchDue(ctx, now, 10)
	suite.Require().NoError(err)
	suite.Empty(others)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkFailedAndSent() {
	ctx := suite.T().Context()
	record := suite.newRecord(now.Add(-time.Minute))
	suite.Require().NoError(suite.repository.Add(ctx, record))

	record.MarkFailed(errors.New("broker unreachable"), now, outbox.RetryPolicy{MaxAttempts: 3, BaseDelay: time.Minute})
	suite.Require().NoError(suite.repository.MarkFailed(ctx, record))

	records, err := suite.repository.FetchDue(ctx, now, 10)
	suite.Require().NoError(err)
	suite.Empty(records, "rescheduled record is not due yet")

	records, err = suite.repository.FetchDue(ctx, now.Add(time.Minute), 10)
	suite.Require().NoError(err)
	suite.Require().Len(records, 1)
	suite.Equal(1, records[0].Attempts())
	suite.Equal("broker unreachable", records[0].LastError())

	records[0].MarkSent(now.Add(time.Minute))
	suite.Require().NoError(suite.repository.MarkSent(ctx, records[0]))

	records, err = suite.repository.FetchDue(ctx, now.Add(time.Hour), 10)
	suite.Require().NoError(err)
	suite.Empty(records)
}

func (suite *OutboxRepositoryIntegrationTestSuite) newRecord(createdAt time.Time) *outbox.Record {
	line, err := order.NewLine(kernel.NewUUID(), 1, kernel.MustMoney("5.00"))
	suite.Require().NoError(err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Line{line}, createdAt)
	suite.Require().NoError(err)
	suite.Require().NoError(o.Complete(createdAt))
	suite.Require().NoError(o.Archive(createdAt))

	record, err := outbox.NewRecord(kernel.NewUUID(), o.Snapshot(), createdAt)
	suite.Require().NoError(err)
	return record
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
