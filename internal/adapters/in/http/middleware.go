package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"warehouse/internal/pkg/logging"

	"github.com/labstack/echo/v4"
)

// observe records the request counter and latency of every route and
// attaches a request scoped logger to the request context.
func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		req := c.Request()
		reqLogger := s.logger.With(
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"method", req.Method,
			"path", c.Path(),
		)
		c.SetRequest(req.WithContext(logging.WithCtx(req.Context(), reqLogger)))

		err := next(c)

		status := c.Response().Status
		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
		} else if err != nil {
			status = http.StatusInternalServerError
		}

		path := c.Path()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request().Method

		s.metrics.Requests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
		s.metrics.LatencyMS.WithLabelValues(method, path).
			Observe(float64(time.Since(start).Microseconds()) / 1000)

		return err
	}
}
