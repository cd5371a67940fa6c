package handlers

import (
	"net/http"
	"strconv"

	"appforge.backend/internal/domain/entities"
	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/interfaces/http/middleware"
	"appforge.backend/internal/interfaces/http/response"
	"appforge.backend/internal/usecases"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type GithubHandler struct {
	githubUsecase *usecases.GithubUsecase
}

func NewGithubHandler(githubUsecase *usecases.GithubUsecase) *GithubHandler {
	return &GithubHandler{
		githubUsecase: githubUsecase,
	}
}

type storePATInput struct {
	PAT string `json:"pat"`
}

// StorePAT saves the project's GitHub personal access token.
func (h *GithubHandler) StorePAT(c *gin.Context) {
	dev, projectID, ok := h.scope(c)
	if !ok {
		return
	}

	var input storePATInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.githubUsecase.StorePAT(c.Request.Context(), dev, projectID, input.PAT); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"saved": true})
}

// SyncSecrets mirrors stored credentials into Actions repo secrets.
func (h *GithubHandler) SyncSecrets(c *gin.Context) {
	dev, projectID, ok := h.scope(c)
	if !ok {
		return
	}

	synced, err := h.githubUsecase.SyncSecrets(c.Request.Context(), dev, c.ClientIP(), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"synced": true, "count": synced})
}

// Dispatch triggers a workflow run for the project.
func (h *GithubHandler) Dispatch(c *gin.Context) {
	dev, projectID, ok := h.scope(c)
	if !ok {
		return
	}

	var input usecases.DispatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	build, err := h.githubUsecase.Dispatch(c.Request.Context(), dev, projectID, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, build)
}

// ListRuns proxies the project's recent workflow runs.
func (h *GithubHandler) ListRuns(c *gin.Context) {
	dev, projectID, ok := h.scope(c)
	if !ok {
		return
	}

	runs, err := h.githubUsecase.ListRuns(c.Request.Context(), dev, projectID, c.Query("workflow"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, runs)
}

// GetRun proxies a single workflow run.
func (h *GithubHandler) GetRun(c *gin.Context) {
	dev, projectID, ok := h.scope(c)
	if !ok {
		return
	}

	runID, err := strconv.ParseInt(c.Param("runId"), 10, 64)
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid run id"))
		return
	}

	run, err := h.githubUsecase.GetRun(c.Request.Context(), dev, projectID, runID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, run)
}

// ListBuilds returns the locally recorded dispatch history.
func (h *GithubHandler) ListBuilds(c *gin.Context) {
	dev, projectID, ok := h.scope(c)
	if !ok {
		return
	}

	builds, err := h.githubUsecase.ListBuilds(c.Request.Context(), dev, projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, builds)
}

func (h *GithubHandler) scope(c *gin.Context) (*entities.AuthenticatedDev, uuid.UUID, bool) {
	d, exists := middleware.GetDev(c)
	if !exists {
		response.Error(c, domainerrors.InvalidAPIKey())
		return nil, uuid.Nil, false
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project id"))
		return nil, uuid.Nil, false
	}

	return d, id, true
}
