package repositories

import (
	"context"

	"appforge.backend/internal/domain/entities"
	"github.com/google/uuid"
)

type SecretRepository interface {
	// Upsert writes or overwrites the single row for (projectID, type)
	// in one atomic statement; concurrent writers to the same pair
	// resolve last-write-wins without duplicate rows.
	Upsert(ctx context.Context, projectID uuid.UUID, secretType entities.SecretType, enc string) error
	Find(ctx context.Context, projectID uuid.UUID, secretType entities.SecretType) (*entities.Secret, error)
	ListMetadata(ctx context.Context, projectID uuid.UUID) ([]*entities.SecretMetadata, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.Secret, error)
}
