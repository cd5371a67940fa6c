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

type CredentialHandler struct {
	credentialUsecase *usecases.CredentialUsecase
	projectUsecase    *usecases.ProjectUsecase
}

func NewCredentialHandler(credentialUsecase *usecases.CredentialUsecase, projectUsecase *usecases.ProjectUsecase) *CredentialHandler {
	return &CredentialHandler{
		credentialUsecase: credentialUsecase,
		projectUsecase:    projectUsecase,
	}
}

type upsertCredentialInput struct {
	Value string `json:"value"`
}

// Upsert stores a credential value for the project.
func (h *CredentialHandler) Upsert(c *gin.Context) {
	dev, projectID, secretType, ok := h.scope(c)
	if !ok {
		return
	}

	var input upsertCredentialInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.credentialUsecase.Upsert(c.Request.Context(), dev, c.ClientIP(), projectID, secretType, input.Value); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"saved": true})
}

// List returns credential metadata for the project, never values.
func (h *CredentialHandler) List(c *gin.Context) {
	dev, ok := middleware.GetDev(c)
	if !ok {
		response.Error(c, domainerrors.InvalidAPIKey())
		return
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project id"))
		return
	}
	if _, err := h.projectUsecase.Get(c.Request.Context(), projectID, dev.ID); err != nil {
		response.Error(c, err)
		return
	}

	items, err := h.credentialUsecase.List(c.Request.Context(), projectID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, items)
}

// Download returns the decrypted credential value.
func (h *CredentialHandler) Download(c *gin.Context) {
	dev, projectID, secretType, ok := h.scope(c)
	if !ok {
		return
	}

	value, err := h.credentialUsecase.Download(c.Request.Context(), dev, c.ClientIP(), projectID, secretType)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"type": secretType, "value": value})
}

// scope resolves the authenticated developer, validates the path
// params and verifies project ownership. On failure the response has
// already been written.
func (h *CredentialHandler) scope(c *gin.Context) (*entities.AuthenticatedDev, uuid.UUID, entities.SecretType, bool) {
	dev, ok := middleware.GetDev(c)
	if !ok {
		response.Error(c, domainerrors.InvalidAPIKey())
		return nil, uuid.Nil, "", false
	}

	projectID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid project id"))
		return nil, uuid.Nil, "", false
	}

	secretType, valid := entities.ParseSecretType(c.Param("type"))
	if !valid {
		response.Error(c, domainerrors.BadRequest("invalid secret type"))
		return nil, uuid.Nil, "", false
	}

	if _, err := h.projectUsecase.Get(c.Request.Context(), projectID, dev.ID); err != nil {
		response.Error(c, err)
		return nil, uuid.Nil, "", false
	}

	return dev, projectID, secretType, true
}
