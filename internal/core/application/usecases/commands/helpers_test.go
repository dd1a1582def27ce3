package commands_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/clock"

	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() *clock.Fixed {
	return clock.NewFixed(testNow)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newLine(t *testing.T, itemID kernel.UUID, quantity int, price string) order.Line {
	t.Helper()
	l, err := order.NewLine(itemID, quantity, kernel.MustMoney(price))
	require.NoError(t, err)
	return l
}

// newOrderInStage builds an order placed an hour before testNow and walks it
// to stage.
func newOrderInStage(t *testing.T, stage order.Stage, lines ...order.Line) *order.Order {
	t.Helper()
	if len(lines) == 0 {
		lines = []order.Line{newLine(t, kernel.NewUUID(), 2, "10.00")}
	}
	placed := testNow.Add(-time.Hour)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), lines, placed)
	require.NoError(t, err)

	switch stage {
	case order.Closed:
		require.NoError(t, o.Complete(placed))
	case order.Archived:
		require.NoError(t, o.Complete(placed))
		require.NoError(t, o.Archive(placed))
	case order.Deleted:
		_, err = o.MarkDeleted(placed)
		require.NoError(t, err)
	}
	return o
}

func newItem(t *testing.T, id kernel.UUID, price string, stock int) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem(id, "item-"+id.String()[:8], "General", kernel.MustMoney(price), stock, kernel.NewUUID())
	require.NoError(t, err)
	return item
}

func mustUUID(t *testing.T, s string) kernel.UUID {
	t.Helper()
	id, err := kernel.UUIDFromString(s)
	require.NoError(t, err)
	return id
}
