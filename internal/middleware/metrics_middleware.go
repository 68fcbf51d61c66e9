// internal/middleware/metrics_middleware.go
package middleware

import (
	"time"

	"authbase-service/internal/metrics"

	"github.com/gin-gonic/gin"
)

func MetricsMiddleware(m metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// FullPath keeps the route template so ids don't blow up cardinality.
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
