package redis_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	rediscache "warehouse/internal/adapters/out/redis"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type report struct {
	Name  string `json:"name"`
	Total int    `json:"total"`
}

const (
	key = "warehouse:report:items:2023-01-01..2023-01-31"
	ttl = time.Minute
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestReportCache_Fetch(t *testing.T) {
	t.Run("should decode hit without loading", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := rediscache.NewReportCache(db, discard())
		mock.ExpectGet(key).SetVal(`{"name":"tea","total":7}`)

		var got report
		err := cache.Fetch(t.Context(), key, ttl, &got, func(context.Context) (any, error) {
			t.Fatal("load must not run on a hit")
			return nil, nil
		})

		require.NoError(t, err)
		assert.Equal(t, report{Name: "tea", Total: 7}, got)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should load and store on miss", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := rediscache.NewReportCache(db, discard())
		mock.ExpectGet(key).RedisNil()
		mock.ExpectSet(key, []byte(`{"name":"tea","total":7}`), ttl).SetVal("OK")

		var got report
		err := cache.Fetch(t.Context(), key, ttl, &got, func(context.Context) (any, error) {
			return report{Name: "tea", Total: 7}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, "tea", got.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should return load error and store nothing", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := rediscache.NewReportCache(db, discard())
		mock.ExpectGet(key).RedisNil()
		loadErr := errors.New("database down")

		var got report
		err := cache.Fetch(t.Context(), key, ttl, &got, func(context.Context) (any, error) {
			return nil, loadErr
		})

		require.ErrorIs(t, err, loadErr)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should fall back to load when redis is unreachable", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := rediscache.NewReportCache(db, discard())
		mock.ExpectGet(key).SetErr(errors.New("dial tcp: connection refused"))
		mock.ExpectSet(key, []byte(`{"name":"tea","total":1}`), ttl).SetErr(errors.New("dial tcp: connection refused"))

		var got report
		err := cache.Fetch(t.Context(), key, ttl, &got, func(context.Context) (any, error) {
			return report{Name: "tea", Total: 1}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, got.Total)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should reload over undecodable entry", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		cache := rediscache.NewReportCache(db, discard())
		mock.ExpectGet(key).SetVal(`not json`)
		mock.ExpectSet(key, []byte(`{"name":"tea","total":2}`), ttl).SetVal("OK")

		var got report
		err := cache.Fetch(t.Context(), key, ttl, &got, func(context.Context) (any, error) {
			return report{Name: "tea", Total: 2}, nil
		})

		require.NoError(t, err)
		assert.Equal(t, 2, got.Total)
	})
}
