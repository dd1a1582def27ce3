package http

import (
	"errors"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/labstack/echo/v4"
)

// validateRequests rejects requests that do not match the OpenAPI document
// before they reach a handler.
func validateRequests(router routers.Router) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			route, pathParams, err := router.FindRoute(req)
			switch {
			case errors.Is(err, routers.ErrMethodNotAllowed):
				return c.JSON(http.StatusMethodNotAllowed, ErrorResponse{
					Code:    http.StatusMethodNotAllowed,
					Message: "Method not allowed",
				})
			case err != nil:
				return c.JSON(http.StatusNotFound, ErrorResponse{
					Code:    http.StatusNotFound,
					Message: "Route not documented",
				})
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return badRequest(c, "Invalid request: "+err.Error())
			}

			return next(c)
		}
	}
}
