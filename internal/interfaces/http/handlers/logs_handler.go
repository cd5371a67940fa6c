package handlers

import (
	"net/http"
	"strconv"

	"appforge.backend/internal/domain/repositories"
	"appforge.backend/internal/interfaces/http/response"
	"appforge.backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

const defaultLogsPageSize = 50

type LogsHandler struct {
	accessLogRepo repositories.AccessLogRepository
}

func NewLogsHandler(accessLogRepo repositories.AccessLogRepository) *LogsHandler {
	return &LogsHandler{
		accessLogRepo: accessLogRepo,
	}
}

// List returns audit entries newest first, paginated.
func (h *LogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLogsPageSize)))
	if limit <= 0 || limit > 200 {
		limit = defaultLogsPageSize
	}
	params := utils.GetPaginationParams(page, limit)

	entries, total, err := h.accessLogRepo.List(c.Request.Context(), params.CalculateOffset(), params.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"items":      entries,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}
