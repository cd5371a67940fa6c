package middleware

import (
	"strconv"

	"appforge.backend/internal/observability"
	"github.com/gin-gonic/gin"
)

// MetricsMiddleware counts requests per method, route template and
// status. The route template keeps path parameters out of the label
// set so cardinality stays bounded.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observability.RequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
	}
}
