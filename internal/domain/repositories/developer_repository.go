package repositories

import (
	"context"

	"appforge.backend/internal/domain/entities"
	"github.com/google/uuid"
)

type DeveloperRepository interface {
	Create(ctx context.Context, dev *entities.Developer) error
	FindByKeyHash(ctx context.Context, keyHash string) (*entities.Developer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Developer, error)
}
