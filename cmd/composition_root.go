package cmd

import (
	"log/slog"
	"time"

	httpadapter "warehouse/internal/adapters/in/http"
	"warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/catalogrepo"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/salesrepo"
	rediscache "warehouse/internal/adapters/out/redis"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/outbox"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"
	"warehouse/internal/jobs"
	"warehouse/internal/pkg/clock"
	"warehouse/internal/pkg/metrics"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	sales      ports.SalesReader
	orders     ports.OrderReader
	catalog    ports.CatalogReader
	cache      ports.ReportCache
	exporter   ports.OrderExporter
	clock      ports.Clock
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewCompositionRoot wires the application over open connections. A nil
// rdb disables report caching.
func NewCompositionRoot(
	cfg Config,
	gormDB *gorm.DB,
	rdb redis.Cmdable,
	exporter ports.OrderExporter,
	m *metrics.Metrics,
	logger *slog.Logger,
) CompositionRoot {
	root := CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		sales:      salesrepo.NewGormSalesReader(gormDB),
		orders:     orderrepo.NewGormOrderReader(gormDB),
		catalog:    catalogrepo.NewGormCatalogReader(gormDB),
		exporter:   exporter,
		clock:      clock.NewSystem(cfg.Location()),
		metrics:    m,
		logger:     logger,
	}
	if rdb != nil {
		root.cache = rediscache.NewReportCache(rdb, logger)
	}
	return root
}

func (c *CompositionRoot) CreateCreateSupplierCommandHandler() commands.CreateSupplierCommandHandler {
	return commands.NewCreateSupplierCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	return commands.NewCreateCustomerCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateItemCommandHandler() commands.CreateItemCommandHandler {
	return commands.NewCreateItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateEditItemCommandHandler() commands.EditItemCommandHandler {
	return commands.NewEditItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateRestockItemCommandHandler() commands.RestockItemCommandHandler {
	return commands.NewRestockItemCommandHandler(c.catalogUoWFactory())
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.stockUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateEditOrderLinesCommandHandler() commands.EditOrderLinesCommandHandler {
	return commands.NewEditOrderLinesCommandHandler(c.stockUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	return commands.NewCompleteOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateIncompleteOrderCommandHandler() commands.IncompleteOrderCommandHandler {
	return commands.NewIncompleteOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateArchiveOrderCommandHandler() commands.ArchiveOrderCommandHandler {
	var f commands.ArchiveUoWFactory = FuncArchiveUoWFactory(func() commands.ArchiveUoW {
		return c.uowFactory.Create()
	})
	return commands.NewArchiveOrderCommandHandler(f, c.clock)
}

func (c *CompositionRoot) CreateMarkOrderDeletedCommandHandler() commands.MarkOrderDeletedCommandHandler {
	return commands.NewMarkOrderDeletedCommandHandler(c.stockUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCleanupStaleOrdersCommandHandler() commands.CleanupStaleOrdersCommandHandler {
	deleter := c.CreateMarkOrderDeletedCommandHandler()
	return commands.NewCleanupStaleOrdersCommandHandler(c.orderUoWFactory(), &deleter, c.clock, c.logger)
}

func (c *CompositionRoot) CreateDispatchArchiveExportsCommandHandler() commands.DispatchArchiveExportsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	policy := outbox.RetryPolicy{
		MaxAttempts: c.cfg.Export.MaxAttempts,
		BaseDelay:   c.cfg.Export.BaseDelay,
		MaxDelay:    c.cfg.Export.MaxDelay,
	}
	return commands.NewDispatchArchiveExportsCommandHandler(f, c.exporter, policy, c.clock, c.logger)
}

func (c *CompositionRoot) CreateGetTopItemsQueryHandler() queries.GetTopItemsQueryHandler {
	return queries.NewGetTopItemsQueryHandler(c.sales, c.aggregator(), c.clock).WithCache(c.cache, c.reportTTL())
}

func (c *CompositionRoot) CreateGetTopSuppliersQueryHandler() queries.GetTopSuppliersQueryHandler {
	return queries.NewGetTopSuppliersQueryHandler(c.sales, c.aggregator(), c.clock).WithCache(c.cache, c.reportTTL())
}

func (c *CompositionRoot) CreateGetTopCustomersQueryHandler() queries.GetTopCustomersQueryHandler {
	return queries.NewGetTopCustomersQueryHandler(c.sales, c.aggregator(), c.clock).WithCache(c.cache, c.reportTTL())
}

func (c *CompositionRoot) CreateGetWeeklyTurnoverQueryHandler() queries.GetWeeklyTurnoverQueryHandler {
	return queries.NewGetWeeklyTurnoverQueryHandler(c.sales, c.clock).WithCache(c.cache, c.reportTTL())
}

func (c *CompositionRoot) CreateGetOrderStageCountsQueryHandler() queries.GetOrderStageCountsQueryHandler {
	return queries.NewGetOrderStageCountsQueryHandler(c.sales, c.clock).WithCache(c.cache, c.reportTTL())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrdersByStageQueryHandler() queries.GetOrdersByStageQueryHandler {
	return queries.NewGetOrdersByStageQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetItemQueryHandler() queries.GetItemQueryHandler {
	return queries.NewGetItemQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetSupplierQueryHandler() queries.GetSupplierQueryHandler {
	return queries.NewGetSupplierQueryHandler(c.catalog)
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.catalog)
}

// CreateServer routes the HTTP API to freshly built handlers.
func (c *CompositionRoot) CreateServer() *httpadapter.Server {
	createSupplier := c.CreateCreateSupplierCommandHandler()
	createCustomer := c.CreateCreateCustomerCommandHandler()
	createItem := c.CreateCreateItemCommandHandler()
	editItem := c.CreateEditItemCommandHandler()
	restockItem := c.CreateRestockItemCommandHandler()
	createOrder := c.CreateCreateOrderCommandHandler()
	editLines := c.CreateEditOrderLinesCommandHandler()
	complete := c.CreateCompleteOrderCommandHandler()
	incomplete := c.CreateIncompleteOrderCommandHandler()
	archive := c.CreateArchiveOrderCommandHandler()
	markDeleted := c.CreateMarkOrderDeletedCommandHandler()

	return httpadapter.NewServer(httpadapter.Handlers{
		CreateSupplier:  &createSupplier,
		CreateCustomer:  &createCustomer,
		CreateItem:      &createItem,
		EditItem:        &editItem,
		RestockItem:     &restockItem,
		CreateOrder:     &createOrder,
		EditOrderLines:  &editLines,
		CompleteOrder:   &complete,
		IncompleteOrder: &incomplete,
		ArchiveOrder:    &archive,
		MarkDeleted:     &markDeleted,

		TopItems:       c.CreateGetTopItemsQueryHandler(),
		TopSuppliers:   c.CreateGetTopSuppliersQueryHandler(),
		TopCustomers:   c.CreateGetTopCustomersQueryHandler(),
		WeeklyTurnover: c.CreateGetWeeklyTurnoverQueryHandler(),
		StageCounts:    c.CreateGetOrderStageCountsQueryHandler(),

		GetOrder:      c.CreateGetOrderQueryHandler(),
		OrdersByStage: c.CreateGetOrdersByStageQueryHandler(),
		GetItem:       c.CreateGetItemQueryHandler(),
		GetSupplier:   c.CreateGetSupplierQueryHandler(),
		GetCustomer:   c.CreateGetCustomerQueryHandler(),
	}, c.metrics, c.logger)
}

// CreateJobManager schedules the cleanup sweep and the export relay.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweep := c.CreateCleanupStaleOrdersCommandHandler()
	dispatch := c.CreateDispatchArchiveExportsCommandHandler()

	return jobs.NewJobManager(
		jobs.NewOrderCleanupJob(&sweep, c.cfg.Orders.CleanupCron, c.cfg.Orders.IdleThreshold, c.metrics, c.logger),
		jobs.NewArchiveExportJob(&dispatch, c.cfg.Export.DispatchCron, c.cfg.Export.BatchSize, c.metrics, c.logger),
	)
}

func (c *CompositionRoot) aggregator() services.TurnoverAggregator {
	return services.NewTurnoverAggregator(c.cfg.Reports.TopN)
}

// reportTTL is zero, which disables caching, when no Redis is configured.
func (c *CompositionRoot) reportTTL() time.Duration {
	if c.cache == nil {
		return 0
	}
	return c.cfg.Redis.ReportTTL
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) stockUoWFactory() commands.StockUoWFactory {
	return FuncStockUoWFactory(func() commands.StockUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) catalogUoWFactory() commands.CatalogUoWFactory {
	return FuncCatalogUoWFactory(func() commands.CatalogUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncArchiveUoWFactory func() commands.ArchiveUoW

func (f FuncArchiveUoWFactory) Create() commands.ArchiveUoW {
	return f()
}

type FuncStockUoWFactory func() commands.StockUoW

func (f FuncStockUoWFactory) Create() commands.StockUoW {
	return f()
}

type FuncCatalogUoWFactory func() commands.CatalogUoW

func (f FuncCatalogUoWFactory) Create() commands.CatalogUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
