package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pogojump/pogojump-api/internal/metrics"
)

// Metrics records request counts, latency and in-flight requests by route template.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	if m == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		m.InFlight.Inc()
		defer m.InFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(c.Writer.Status())).Inc()
		m.ReqDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
	}
}
