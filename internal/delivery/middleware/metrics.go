package middleware

import (
	"time"

	"whatsorder/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

type MetricsMiddleware struct {
	metrics *metrics.Metrics
}

func NewMetricsMiddleware(m *metrics.Metrics) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle labels requests by route template so ids and slugs do not become
// separate series.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// The error handler has not written the response yet.
		if err != nil {
			c.Error(err)
		}

		path := c.Path()
		if path == "" {
			path = unmatchedRoute
		}
		m.metrics.ObserveHTTP(c.Request().Method, path, c.Response().Status, time.Since(start))

		return nil
	}
}
