package repositories

import (
	"context"

	"appforge.backend/internal/domain/entities"
	"github.com/google/uuid"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entities.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Project, error)
	// FindByIDAndOwner scopes the lookup to the owning developer;
	// a foreign project comes back as not found.
	FindByIDAndOwner(ctx context.Context, id, ownerDevID uuid.UUID) (*entities.Project, error)
	FindBySlug(ctx context.Context, slug string) (*entities.Project, error)
	ListByOwner(ctx context.Context, ownerDevID uuid.UUID) ([]*entities.Project, error)
	Update(ctx context.Context, project *entities.Project) error
	// Delete removes the project together with its secrets and builds.
	Delete(ctx context.Context, id uuid.UUID) error
}
