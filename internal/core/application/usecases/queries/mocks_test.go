package queries_test

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockSalesReader struct{ mock.Mock }

func (m *MockSalesReader) EarliestArchivedAt(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if t, ok := args.Get(0).(*time.Time); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesReader) EarliestCreatedAt(ctx context.Context) (*time.Time, error) {
	args := m.Called(ctx)
	if t, ok := args.Get(0).(*time.Time); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesReader) ItemSales(ctx context.Context, borders services.TimeBorders) ([]services.SaleRow, error) {
	return m.rows(m.Called(ctx, borders))
}

func (m *MockSalesReader) SupplierSales(ctx context.Context, borders services.TimeBorders) ([]services.SaleRow, error) {
	return m.rows(m.Called(ctx, borders))
}

func (m *MockSalesReader) CustomerSales(ctx context.Context, borders services.TimeBorders) ([]services.SaleRow, error) {
	return m.rows(m.Called(ctx, borders))
}

func (m *MockSalesReader) rows(args mock.Arguments) ([]services.SaleRow, error) {
	if rows, ok := args.Get(0).([]services.SaleRow); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesReader) ArchivedTotals(
	ctx context.Context,
	borders services.TimeBorders,
) ([]services.ArchivedTotal, error) {
	args := m.Called(ctx, borders)
	if totals, ok := args.Get(0).([]services.ArchivedTotal); ok {
		return totals, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSalesReader) StageCounts(ctx context.Context, borders services.TimeBorders) (ports.StageCounts, error) {
	args := m.Called(ctx, borders)
	return args.Get(0).(ports.StageCounts), args.Error(1)
}

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) GetOrder(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderReader) ListByStage(
	ctx context.Context,
	stage order.Stage,
	limit, offset int,
) ([]*order.Order, int64, error) {
	args := m.Called(ctx, stage, limit, offset)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Get(1).(int64), args.Error(2)
	}
	return nil, 0, args.Error(2)
}

type MockCatalogReader struct{ mock.Mock }

func (m *MockCatalogReader) GetItem(ctx context.Context, id kernel.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, id)
	if item, ok := args.Get(0).(*catalog.Item); ok {
		return item, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogReader) GetSupplier(ctx context.Context, id kernel.UUID) (*catalog.Supplier, error) {
	args := m.Called(ctx, id)
	if supplier, ok := args.Get(0).(*catalog.Supplier); ok {
		return supplier, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCatalogReader) GetCustomer(ctx context.Context, id kernel.UUID) (*catalog.Customer, error) {
	args := m.Called(ctx, id)
	if customer, ok := args.Get(0).(*catalog.Customer); ok {
		return customer, args.Error(1)
	}
	return nil, args.Error(1)
}

// memoryCache is a ports.ReportCache that round-trips values through JSON
// the way the Redis cache does.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	keys    []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Fetch(
	ctx context.Context,
	key string,
	_ time.Duration,
	dst any,
	load func(ctx context.Context) (any, error),
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok := c.entries[key]
	if !ok {
		v, err := load(ctx)
		if err != nil {
			return err
		}
		if raw, err = json.Marshal(v); err != nil {
			return err
		}
		c.entries[key] = raw
		c.keys = append(c.keys, key)
	}
	return json.Unmarshal(raw, dst)
}
