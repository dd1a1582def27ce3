// Package http exposes the warehouse use cases over a JSON API served by echo.
package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"warehouse/internal/adapters/in/http/openapi"
	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/pkg/metrics"

	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// CommandHandler runs a command that produces no result.
type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// ResultHandler runs a command or query that produces a result.
type ResultHandler[C, R any] interface {
	Handle(ctx context.Context, cmd C) (R, error)
}

// Handlers are the use cases the server routes to.
type Handlers struct {
	CreateSupplier  CommandHandler[commands.CreateSupplierCommand]
	CreateCustomer  CommandHandler[commands.CreateCustomerCommand]
	CreateItem      CommandHandler[commands.CreateItemCommand]
	EditItem        CommandHandler[commands.EditItemCommand]
	RestockItem     ResultHandler[commands.RestockItemCommand, int]
	CreateOrder     CommandHandler[commands.CreateOrderCommand]
	EditOrderLines  CommandHandler[commands.EditOrderLinesCommand]
	CompleteOrder   CommandHandler[commands.CompleteOrderCommand]
	IncompleteOrder CommandHandler[commands.IncompleteOrderCommand]
	ArchiveOrder    CommandHandler[commands.ArchiveOrderCommand]
	MarkDeleted     ResultHandler[commands.MarkOrderDeletedCommand, bool]

	TopItems       ResultHandler[queries.GetTopItemsQuery, queries.TopSalesResponse]
	TopSuppliers   ResultHandler[queries.GetTopSuppliersQuery, queries.TopSalesResponse]
	TopCustomers   ResultHandler[queries.GetTopCustomersQuery, queries.TopSalesResponse]
	WeeklyTurnover ResultHandler[queries.GetWeeklyTurnoverQuery, []services.DayTurnover]
	StageCounts    ResultHandler[queries.GetOrderStageCountsQuery, queries.StageCountsResponse]

	GetOrder      ResultHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	OrdersByStage ResultHandler[queries.GetOrdersByStageQuery, queries.GetOrdersByStageQueryResponse]
	GetItem       ResultHandler[queries.GetItemQuery, queries.GetItemQueryResponse]
	GetSupplier   ResultHandler[queries.GetSupplierQuery, queries.GetSupplierQueryResponse]
	GetCustomer   ResultHandler[queries.GetCustomerQuery, queries.GetCustomerQueryResponse]
}

// Server translates HTTP requests into commands and queries and maps their
// errors onto status codes.
type Server struct {
	handlers Handlers
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

func NewServer(handlers Handlers, m *metrics.Metrics, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		metrics:  m,
		logger:   logger.With("component", "http"),
	}
}

// Register mounts every route on e. Requests under /api/v1 are validated
// against the embedded OpenAPI document, which is served at /openapi.yaml,
// as /swagger/doc.json and browsable at /swagger/index.html.
func (s *Server) Register(e *echo.Echo) error {
	doc, err := openapi.Load(context.Background())
	if err != nil {
		return err
	}
	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return fmt.Errorf("build openapi router: %w", err)
	}
	if err = openapi.Register(doc); err != nil {
		return err
	}

	e.Use(s.observe)

	e.GET("/health", s.Health)
	e.GET("/metrics", echo.WrapHandler(s.metrics.Handler()))
	e.GET("/openapi.yaml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", openapi.Raw())
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1", validateRequests(router))

	v1.POST("/suppliers", s.CreateSupplier)
	v1.GET("/suppliers/:id", s.GetSupplier)
	v1.POST("/customers", s.CreateCustomer)
	v1.GET("/customers/:id", s.GetCustomer)
	v1.POST("/items", s.CreateItem)
	v1.GET("/items/:id", s.GetItem)
	v1.PUT("/items/:id", s.EditItem)
	v1.POST("/items/:id/restock", s.RestockItem)

	v1.GET("/orders", s.ListOrders)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/:id", s.GetOrder)
	v1.PUT("/orders/:id/lines", s.EditOrderLines)
	v1.POST("/orders/:id/complete", s.CompleteOrder)
	v1.POST("/orders/:id/incomplete", s.IncompleteOrder)
	v1.POST("/orders/:id/archive", s.ArchiveOrder)
	v1.DELETE("/orders/:id", s.DeleteOrder)

	v1.GET("/reports/items", s.TopItems)
	v1.GET("/reports/suppliers", s.TopSuppliers)
	v1.GET("/reports/customers", s.TopCustomers)
	v1.GET("/reports/weekly", s.WeeklyTurnover)
	v1.GET("/reports/stages", s.StageCounts)

	return nil
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.String(http.StatusOK, "Healthy")
}
