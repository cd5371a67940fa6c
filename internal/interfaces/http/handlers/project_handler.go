package handlers

import (
	"net/http"

	"appforge.backend/internal/domain/entities"
	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/interfaces/http/middleware"
	"appforge.backend/internal/interfaces/http/response"
	"appforge.backend/internal/usecases"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProjectHandler struct {
	projectUsecase *usecases.ProjectUsecase
}

func NewProjectHandler(projectUsecase *usecases.ProjectUsecase) *ProjectHandler {
	return &ProjectHandler{
		projectUsecase: projectUsecase,
	}
}

// Create creates a new project
func (h *ProjectHandler) Create(c *gin.Context) {
	dev, ok := middleware.GetDev(c)
	if !ok {
		response.Error(c, domainerrors.InvalidAPIKey())
		return
	}

	var input entities.CreateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	project, err := h.projectUsecase.Create(c.Request.Context(), dev.ID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, project)
}

// List lists the caller's projects
func (h *ProjectHandler) List(c *gin.Context) {
	dev, ok := middleware.GetDev(c)
	if !ok {
		response.Error(c, domainerrors.InvalidAPIKey())
		return
	}

	projects, err := h.projectUsecase.List(c.Request.Context(), dev.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, projects)
}

// Get returns one of the caller's projects
func (h *ProjectHandler) Get(c *gin.Context) {
	dev, ok := middleware.GetDev(c)
	if !ok {
		response.Error(c, domainerrors.InvalidAPIKey())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project id"))
		return
	}

	project, err := h.projectUsecase.Get(c.Request.Context(), id, dev.ID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, project)
}

// Update applies a partial update to one of the caller's projects
func (h *ProjectHandler) Update(c *gin.Context) {
	dev, ok := middleware.GetDev(c)
	if !ok {
		response.Error(c, domainerrors.InvalidAPIKey())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project id"))
		return
	}

	var input entities.UpdateProjectInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	project, err := h.projectUsecase.Update(c.Request.Context(), id, dev.ID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, project)
}

// Delete removes one of the caller's projects
func (h *ProjectHandler) Delete(c *gin.Context) {
	dev, ok := middleware.GetDev(c)
	if !ok {
		response.Error(c, domainerrors.InvalidAPIKey())
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project id"))
		return
	}

	if err := h.projectUsecase.Delete(c.Request.Context(), id, dev.ID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
