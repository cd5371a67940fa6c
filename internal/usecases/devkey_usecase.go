package usecases

import (
	"context"
	"encoding/json"

	"appforge.backend/internal/domain/entities"
	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/domain/repositories"
	"appforge.backend/pkg/crypto"
)

// DevKeyUsecase issues developer API keys. Only the fingerprint is
// stored; the raw key appears once in the response.
type DevKeyUsecase struct {
	devRepo       repositories.DeveloperRepository
	accessLogRepo repositories.AccessLogRepository
	hasher        *crypto.KeyHasher
}

func NewDevKeyUsecase(
	devRepo repositories.DeveloperRepository,
	accessLogRepo repositories.AccessLogRepository,
	hasher *crypto.KeyHasher,
) *DevKeyUsecase {
	return &DevKeyUsecase{
		devRepo:       devRepo,
		accessLogRepo: accessLogRepo,
		hasher:        hasher,
	}
}

func (u *DevKeyUsecase) Issue(ctx context.Context, actor *entities.AuthenticatedDev, ip string, input *entities.CreateDevKeyInput) (*entities.CreateDevKeyResponse, error) {
	role := input.Role
	if role == "" {
		role = entities.DevRoleDev
	}
	if role != entities.DevRoleAdmin && role != entities.DevRoleDev {
		return nil, domainerrors.BadRequest("invalid role")
	}

	rawKey, err := crypto.GenerateAPIKey()
	if err != nil {
		return nil, domainerrors.InternalError(err)
	}

	dev := &entities.Developer{
		Name:       input.Name,
		Role:       role,
		APIKeyHash: u.hasher.Fingerprint(rawKey),
		IsActive:   true,
	}
	if err := u.devRepo.Create(ctx, dev); err != nil {
		return nil, err
	}

	meta, _ := json.Marshal(map[string]string{"target": dev.ID.String()})
	if err := u.accessLogRepo.Append(ctx, &entities.AccessLogEntry{
		DevID:  actor.ID,
		IP:     ip,
		Action: entities.AuditDevKeyCreate,
		Meta:   string(meta),
	}); err != nil {
		return nil, err
	}

	return &entities.CreateDevKeyResponse{DeveloperID: dev.ID, APIKey: rawKey}, nil
}
