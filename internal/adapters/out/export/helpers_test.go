package export_test

import (
	"testing"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func archivedSnapshot(t *testing.T) order.Snapshot {
	t.Helper()

	now := time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)
	line, err := order.NewLine(kernel.NewUUID(), 2, kernel.MustMoney("4.25"))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Line{line}, now)
	require.NoError(t, err)
	require.NoError(t, o.Complete(now))
	require.NoError(t, o.Archive(now.Add(time.Hour)))

	return o.Snapshot()
}
