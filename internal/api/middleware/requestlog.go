package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/demobank/banking-api/internal/api/metrics"
	"github.com/demobank/banking-api/internal/core/domain"
)

// LogEnqueuer is the interface the middleware uses to hand off log entries.
type LogEnqueuer interface {
	Enqueue(entry domain.LogEntry)
}

// Operational endpoints stay out of the traffic log: Prometheus scrapes and
// health probes fire on a schedule and would drown out actual banking usage.
var infraPaths = map[string]struct{}{
	"/metrics":      {},
	"/health":       {},
	"/health/ready": {},
}

// RequestLog classifies each request as read (GET, type 1) or write (type 2),
// bumps the traffic counters and enqueues a log row for the dashboard. The
// insert happens off the request path; a dropped entry is acceptable.
func RequestLog(dispatcher LogEnqueuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := infraPaths[c.Request().URL.Path]; ok {
				return next(c)
			}

			kind := domain.LogWrite
			label := "write"
			if c.Request().Method == http.MethodGet {
				kind = domain.LogRead
				label = "read"
			}

			metrics.RequestsTotal.WithLabelValues(label).Inc()
			dispatcher.Enqueue(domain.LogEntry{
				Description: c.Request().Method + " " + c.Request().URL.Path,
				Kind:        kind,
			})

			return next(c)
		}
	}
}
