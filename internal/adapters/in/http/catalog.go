package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateSupplier handles POST /api/v1/suppliers.
func (s *Server) CreateSupplier(c echo.Context) error {
	var body NewSupplier
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateSupplierCommand(body.Name, body.Email)
	if err != nil {
		return s.fail(c, err, "Invalid supplier data")
	}

	if err = s.handlers.CreateSupplier.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, "Failed to create supplier")
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.SupplierID().String()})
}

// CreateCustomer handles POST /api/v1/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	var body NewCustomer
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateCustomerCommand(body.CompanyName, body.PersonName, body.Email)
	if err != nil {
		return s.fail(c, err, "Invalid customer data")
	}

	if err = s.handlers.CreateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, "Failed to create customer")
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.CustomerID().String()})
}

// CreateItem handles POST /api/v1/items.
func (s *Server) CreateItem(c echo.Context) error {
	var body NewItem
	if err := c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return s.fail(c, err, "Invalid item price")
	}
	supplierID, err := kernel.UUIDFromString(body.SupplierID)
	if err != nil {
		return s.fail(c, err, "Invalid supplier id")
	}

	cmd, err := commands.NewCreateItemCommand(body.Name, body.Category, price, body.Stock, supplierID)
	if err != nil {
		return s.fail(c, err, "Invalid item data")
	}

	if err = s.handlers.CreateItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, "Failed to create item")
	}

	return c.JSON(http.StatusCreated, CreatedResponse{ID: cmd.ItemID().String()})
}

// EditItem handles PUT /api/v1/items/:id.
func (s *Server) EditItem(c echo.Context) error {
	itemID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err, "Invalid item id")
	}

	var body ItemChanges
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}
	price, err := kernel.MoneyFromString(body.Price)
	if err != nil {
		return s.fail(c, err, "Invalid item price")
	}

	cmd, err := commands.NewEditItemCommand(itemID, body.Name, body.Category, price)
	if err != nil {
		return s.fail(c, err, "Invalid item data")
	}

	if err = s.handlers.EditItem.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err, "Failed to edit item")
	}

	return c.NoContent(http.StatusNoContent)
}

// RestockItem handles POST /api/v1/items/:id/restock.
func (s *Server) RestockItem(c echo.Context) error {
	itemID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err, "Invalid item id")
	}

	var body RestockRequest
	if err = c.Bind(&body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewRestockItemCommand(itemID, body.Quantity)
	if err != nil {
		return s.fail(c, err, "Invalid restock")
	}

	stock, err := s.handlers.RestockItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err, "Failed to restock item")
	}

	return c.JSON(http.StatusOK, StockResponse{Stock: stock})
}

// GetItem handles GET /api/v1/items/:id.
func (s *Server) GetItem(c echo.Context) error {
	return lookup(s, c, "item", queries.NewGetItemQuery, s.handlers.GetItem)
}

// GetSupplier handles GET /api/v1/suppliers/:id.
func (s *Server) GetSupplier(c echo.Context) error {
	return lookup(s, c, "supplier", queries.NewGetSupplierQuery, s.handlers.GetSupplier)
}

// GetCustomer handles GET /api/v1/customers/:id.
func (s *Server) GetCustomer(c echo.Context) error {
	return lookup(s, c, "customer", queries.NewGetCustomerQuery, s.handlers.GetCustomer)
}

// lookup runs a query addressed by the :id path parameter and renders its
// result as JSON.
func lookup[Q, R any](
	s *Server,
	c echo.Context,
	name string,
	newQuery func(kernel.UUID) (Q, error),
	handler ResultHandler[Q, R],
) error {
	id, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, err, "Invalid "+name+" id")
	}

	query, err := newQuery(id)
	if err != nil {
		return s.fail(c, err, "Invalid "+name+" id")
	}

	res, err := handler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err, "Failed to load "+name)
	}

	return c.JSON(http.StatusOK, res)
}
