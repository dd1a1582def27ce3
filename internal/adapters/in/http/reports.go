package http

import (
	"net/http"

	"warehouse/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// TopItems handles GET /api/v1/reports/items?fromDate&toDate.
func (s *Server) TopItems(c echo.Context) error {
	p, err := bindPeriod(c)
	if err != nil {
		return badRequest(c, "Invalid query parameters: "+err.Error())
	}

	res, err := s.handlers.TopItems.Handle(c.Request().Context(), queries.NewGetTopItemsQuery(p.from(), p.to()))
	if err != nil {
		return s.fail(c, err, "Failed to rank items")
	}

	return c.JSON(http.StatusOK, res)
}

// TopSuppliers handles GET /api/v1/reports/suppliers?fromDate&toDate.
func (s *Server) TopSuppliers(c echo.Context) error {
	p, err := bindPeriod(c)
	if err != nil {
		return badRequest(c, "Invalid query parameters: "+err.Error())
	}

	res, err := s.handlers.TopSuppliers.Handle(c.Request().Context(), queries.NewGetTopSuppliersQuery(p.from(), p.to()))
	if err != nil {
		return s.fail(c, err, "Failed to rank suppliers")
	}

	return c.JSON(http.StatusOK, res)
}

// TopCustomers handles GET /api/v1/reports/customers?fromDate&toDate.
func (s *Server) TopCustomers(c echo.Context) error {
	p, err := bindPeriod(c)
	if err != nil {
		return badRequest(c, "Invalid query parameters: "+err.Error())
	}

	res, err := s.handlers.TopCustomers.Handle(c.Request().Context(), queries.NewGetTopCustomersQuery(p.from(), p.to()))
	if err != nil {
		return s.fail(c, err, "Failed to rank customers")
	}

	return c.JSON(http.StatusOK, res)
}

// WeeklyTurnover handles GET /api/v1/reports/weekly.
func (s *Server) WeeklyTurnover(c echo.Context) error {
	days, err := s.handlers.WeeklyTurnover.Handle(c.Request().Context(), queries.NewGetWeeklyTurnoverQuery())
	if err != nil {
		return s.fail(c, err, "Failed to compute weekly turnover")
	}

	return c.JSON(http.StatusOK, days)
}

// StageCounts handles GET /api/v1/reports/stages?fromDate&toDate.
func (s *Server) StageCounts(c echo.Context) error {
	p, err := bindPeriod(c)
	if err != nil {
		return badRequest(c, "Invalid query parameters: "+err.Error())
	}

	res, err := s.handlers.StageCounts.Handle(c.Request().Context(), queries.NewGetOrderStageCountsQuery(p.from(), p.to()))
	if err != nil {
		return s.fail(c, err, "Failed to count orders")
	}

	return c.JSON(http.StatusOK, res)
}

// bindPeriod reads the optional fromDate and toDate query parameters.
func bindPeriod(c echo.Context) (ReportPeriod, error) {
	var p ReportPeriod
	if err := runtime.BindQueryParameter("form", true, false, "fromDate", c.QueryParams(), &p.FromDate); err != nil {
		return ReportPeriod{}, err
	}
	if err := runtime.BindQueryParameter("form", true, false, "toDate", c.QueryParams(), &p.ToDate); err != nil {
		return ReportPeriod{}, err
	}
	return p, nil
}
