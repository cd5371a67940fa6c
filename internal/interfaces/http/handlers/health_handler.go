package handlers

import (
	"net/http"

	"appforge.backend/internal/interfaces/http/response"
	"github.com/gin-gonic/gin"
)

// Health reports liveness.
func Health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "up"})
}
