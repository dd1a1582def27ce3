package http

import (
	"fmt"
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	"github.com/samber/lo"
)

// Transition names used as metric labels.
const (
	transitionCreate     = "create"
	transitionEditLines  = "edit_lines"
	transitionComplete   = "complete"
	transitionIncomplete = "incomplete"
	transitionArchive    = "archive"
	transitionDelete     = "delete"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var body NewOrder
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(body.CustomerID)
	if err != nil {
		return s.fail(c, err, "Invalid customer id")
	}
	lines, err := toLineInputs(body.Lines)
	if err != nil {
		return s.fail(c, err, "Invalid order lines")
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, lines)
	if err != nil {
		return s.fail(c, err, "Invalid order data")
	}

	err = s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveTransition(transitionCreate, err)
	if err != nil {
		return s.fail(c, err, "Failed to create order")
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.OrderID().String()})
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(c echo.Context) error {
	return lookup(s, c, "order", queries.NewGetOrderQuery, s.handlers.GetOrder)
}

// ListOrders handles GET /api/v1/orders?stage&page&size.
func (s *Server) ListOrders(c echo.Context) error {
	var p OrderListing
	params := c.QueryParams()
	if err := runtime.BindQueryParameter("form", true, true, "stage", params, &p.Stage); err != nil {
		return badRequest(c, "Invalid query parameters: "+err.Error())
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", params, &p.Page); err != nil {
		return badRequest(c, "Invalid query parameters: "+err.Error())
	}
	if err := runtime.BindQueryParameter("form", true, false, "size", params, &p.Size); err != nil {
		return badRequest(c, "Invalid query parameters: "+err.Error())
	}

	query, err := queries.NewGetOrdersByStageQuery(p.Stage, lo.FromPtr(p.Page), lo.FromPtr(p.Size))
	if err != nil {
		return s.fail(c, err, "Invalid order listing")
	}

	res, err := s.handlers.OrdersByStage.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to list orders")
	}

	return c.JSON(http.StatusOK, res)
}

// EditOrderLines handles PUT /api/v1/orders/:id/lines.
func (s *Server) EditOrderLines(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err, "Invalid order id")
	}

	var body OrderLines
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	lines, err := toLineInputs(body.Lines)
	if err != nil {
		return s.fail(c, err, "Invalid order lines")
	}

	cmd, err := commands.NewEditOrderLinesCommand(orderID, lines)
	if err != nil {
		return s.fail(c, err, "Invalid order lines")
	}

	err = s.handlers.EditOrderLines.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveTransition(transitionEditLines, err)
	if err != nil {
		return s.fail(c, err, "Failed to edit order lines")
	}

	return c.NoContent(http.StatusNoContent)
}

// CompleteOrder handles POST /api/v1/orders/:id/complete.
func (s *Server) CompleteOrder(c echo.Context) error {
	return transition(s, c, transitionComplete, commands.NewCompleteOrderCommand, s.handlers.CompleteOrder)
}

// IncompleteOrder handles POST /api/v1/orders/:id/incomplete.
func (s *Server) IncompleteOrder(c echo.Context) error {
	return transition(s, c, transitionIncomplete, commands.NewIncompleteOrderCommand, s.handlers.IncompleteOrder)
}

// ArchiveOrder handles POST /api/v1/orders/:id/archive.
func (s *Server) ArchiveOrder(c echo.Context) error {
	return transition(s, c, transitionArchive, commands.NewArchiveOrderCommand, s.handlers.ArchiveOrder)
}

// DeleteOrder handles DELETE /api/v1/orders/:id. Deleting an order twice
// succeeds and reports deleted=false.
func (s *Server) DeleteOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err, "Invalid order id")
	}

	cmd, err := commands.NewMarkOrderDeletedCommand(orderID)
	if err != nil {
		return s.fail(c, err, "Invalid order id")
	}

	deleted, err := s.handlers.MarkDeleted.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveTransition(transitionDelete, err)
	if err != nil {
		return s.fail(c, err, "Failed to delete order")
	}

	return c.JSON(http.StatusOK, DeletedResponse{Deleted: deleted})
}

// transition runs a single-order lifecycle command addressed by the :id
// path parameter.
func transition[C any](
	s *Server,
	c echo.Context,
	name string,
	newCommand func(kernel.UUID) (C, error),
	handler CommandHandler[C],
) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err, "Invalid order id")
	}

	cmd, err := newCommand(orderID)
	if err != nil {
		return s.fail(c, err, "Invalid order id")
	}

	err = handler.Handle(c.Request().Context(), cmd)
	s.metrics.ObserveTransition(name, err)
	if err != nil {
		return s.fail(c, err, "Failed to "+name+" order")
	}

	return c.NoContent(http.StatusNoContent)
}

func toLineInputs(lines []OrderLine) ([]commands.LineInput, error) {
	inputs := make([]commands.LineInput, 0, len(lines))
	for i, l := range lines {
		itemID, err := kernel.UUIDFromString(l.ItemID)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i, err)
		}
		inputs = append(inputs, commands.LineInput{ItemID: itemID, Quantity: l.Quantity})
	}
	return inputs, nil
}
