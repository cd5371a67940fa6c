package middleware

import (
	"appforge.backend/internal/domain/entities"
	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/interfaces/http/response"
	"appforge.backend/internal/usecases"
	"github.com/gin-gonic/gin"
)

const (
	// APIKeyHeader carries the raw API key on protected requests
	APIKeyHeader = "X-Api-Key"
	// DevKey is the context key for the authenticated developer
	DevKey = "dev"
)

// BanGuard rejects requests from banned IPs before any other work is
// spent on them. A counter-store failure rejects the request rather
// than waving it through.
func BanGuard(banTracker *usecases.BanTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		banned, remaining, err := banTracker.Check(c.Request.Context(), c.ClientIP())
		if err != nil {
			response.Error(c, domainerrors.InternalError(err))
			c.Abort()
			return
		}
		if banned {
			response.Error(c, domainerrors.IPBanned(int64(remaining.Seconds())))
			c.Abort()
			return
		}
		c.Next()
	}
}

// APIKeyAuth resolves the X-Api-Key header to a developer identity and
// stores it in the gin context. Every rejection is the same generic
// 401 regardless of branch.
func APIKeyAuth(authUsecase *usecases.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawKey := c.GetHeader(APIKeyHeader)
		dev, err := authUsecase.Authenticate(c.Request.Context(), c.ClientIP(), rawKey)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		c.Set(DevKey, dev)
		c.Next()
	}
}

// RequireAdmin allows only developers with the ADMIN role past.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		dev, ok := GetDev(c)
		if !ok || dev.Role != entities.DevRoleAdmin {
			response.Error(c, domainerrors.Forbidden("admin role required"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetDev gets the authenticated developer from context
func GetDev(c *gin.Context) (*entities.AuthenticatedDev, bool) {
	v, exists := c.Get(DevKey)
	if !exists {
		return nil, false
	}
	dev, ok := v.(*entities.AuthenticatedDev)
	return dev, ok
}
