package response

import (
	"errors"
	"net/http"

	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"ok":   true,
		"data": data,
	})
}

// Error maps a domain error onto the wire envelope. Anything that is
// neither an AppError nor a RateLimitError is collapsed to a generic
// 500 with the detail kept server-side.
func Error(c *gin.Context, err error) {
	var rateErr *domainerrors.RateLimitError
	if errors.As(err, &rateErr) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"ok":      false,
			"code":    domainerrors.CodeRateLimit,
			"message": "Too many requests",
		})
		return
	}

	var appErr *domainerrors.AppError
	if !errors.As(err, &appErr) {
		logger.Error(c.Request.Context(), "unhandled error", zap.Error(err))
		appErr = domainerrors.InternalError(err)
	}

	c.JSON(appErr.Status, gin.H{
		"ok":      false,
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}
