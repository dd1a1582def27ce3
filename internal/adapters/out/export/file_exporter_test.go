package export_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"warehouse/internal/adapters/out/export"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExporter_Export(t *testing.T) {
	t.Run("should write snapshot as json named by order id", func(t *testing.T) {
		dir := t.TempDir()
		exporter, err := export.NewFileExporter(dir)
		require.NoError(t, err)
		snapshot := archivedSnapshot(t)

		require.NoError(t, exporter.Export(t.Context(), snapshot))

		path := filepath.Join(dir, "order_"+snapshot.ID+".json")
		assert.Equal(t, path, exporter.Path(snapshot.ID))

		body, err := os.ReadFile(path)
		require.NoError(t, err)

		var got order.Snapshot
		require.NoError(t, json.Unmarshal(body, &got))
		assert.Equal(t, snapshot.ID, got.ID)
		assert.Equal(t, "Archived", got.Stage)
		assert.True(t, got.Closed)
		assert.True(t, got.Archived)
		assert.False(t, got.Deleted)
		assert.Equal(t, "8.5", got.Total.String())
	})

	t.Run("should overwrite on repeated export", func(t *testing.T) {
		dir := t.TempDir()
		exporter, err := export.NewFileExporter(dir)
		require.NoError(t, err)
		snapshot := archivedSnapshot(t)

		require.NoError(t, exporter.Export(t.Context(), snapshot))
		require.NoError(t, exporter.Export(t.Context(), snapshot))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1, "no temp files left behind")
	})

	t.Run("should create missing directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "exports")

		_, err := export.NewFileExporter(dir)

		require.NoError(t, err)
		assert.DirExists(t, dir)
	})

	t.Run("should reject empty directory", func(t *testing.T) {
		_, err := export.NewFileExporter("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject snapshot without id", func(t *testing.T) {
		exporter, err := export.NewFileExporter(t.TempDir())
		require.NoError(t, err)

		err = exporter.Export(t.Context(), order.Snapshot{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should stop on canceled context", func(t *testing.T) {
		dir := t.TempDir()
		exporter, err := export.NewFileExporter(dir)
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		require.ErrorIs(t, exporter.Export(ctx, archivedSnapshot(t)), context.Canceled)
		entries, _ := os.ReadDir(dir)
		assert.Empty(t, entries)
	})
}
