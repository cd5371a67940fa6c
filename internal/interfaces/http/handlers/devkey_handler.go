package handlers

import (
	"net/http"

	"appforge.backend/internal/domain/entities"
	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/interfaces/http/middleware"
	"appforge.backend/internal/interfaces/http/response"
	"appforge.backend/internal/usecases"
	"github.com/gin-gonic/gin"
)

type DevKeyHandler struct {
	devKeyUsecase *usecases.DevKeyUsecase
}

func NewDevKeyHandler(devKeyUsecase *usecases.DevKeyUsecase) *DevKeyHandler {
	return &DevKeyHandler{
		devKeyUsecase: devKeyUsecase,
	}
}

// Create issues a new developer key. The raw key appears in this
// response and nowhere else.
func (h *DevKeyHandler) Create(c *gin.Context) {
	actor, ok := middleware.GetDev(c)
	if !ok {
		response.Error(c, domainerrors.InvalidAPIKey())
		return
	}

	var input entities.CreateDevKeyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	resp, err := h.devKeyUsecase.Issue(c.Request.Context(), actor, c.ClientIP(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

// Me returns the identity resolved from the presented key.
func (h *DevKeyHandler) Me(c *gin.Context) {
	dev, ok := middleware.GetDev(c)
	if !ok {
		response.Error(c, domainerrors.InvalidAPIKey())
		return
	}
	response.Success(c, http.StatusOK, dev)
}
