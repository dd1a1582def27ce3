package http

import (
	"errors"
	"net/http"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

// statusOf maps a use case error onto an HTTP status code.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrInvalidStateTransition),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidDateRange),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an ErrorResponse. Internal errors are logged and
// reported with message only.
func (s *Server) fail(c echo.Context, err error, message string) error {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		ctx := c.Request().Context()
		logging.FromCtx(ctx).ErrorContext(ctx, message, "error", err)
		return c.JSON(code, ErrorResponse{Code: code, Message: message})
	}

	return c.JSON(code, ErrorResponse{Code: code, Message: message + ": " + err.Error()})
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: message})
}
