package middleware

import (
	"appforge.backend/internal/interfaces/http/response"
	"appforge.backend/internal/usecases"
	"github.com/gin-gonic/gin"
)

// GlobalRateLimit applies the per-IP window to every request that
// reaches it, authenticated or not.
func GlobalRateLimit(limiter *usecases.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := limiter.AllowGlobal(c.Request.Context(), c.ClientIP()); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}

// PerKeyRateLimit applies the per-key window. It keys on the raw
// header value, so invalid keys burn their own budget instead of
// sharing one.
func PerKeyRateLimit(limiter *usecases.RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKey := c.GetHeader(APIKeyHeader)
		if rawKey == "" {
			c.Next()
			return
		}
		if err := limiter.AllowPerKey(c.Request.Context(), rawKey, c.ClientIP()); err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Next()
	}
}
