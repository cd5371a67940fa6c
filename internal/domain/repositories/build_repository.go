package repositories

import (
	"context"
	"time"

	"appforge.backend/internal/domain/entities"
	"github.com/google/uuid"
)

type BuildRepository interface {
	Create(ctx context.Context, build *entities.Build) error
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.Build, error)
	// GetDispatchedBefore returns at most limit dispatched builds older
	// than the cutoff, for the staleness sweeper.
	GetDispatchedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Build, error)
	MarkStale(ctx context.Context, ids []uuid.UUID) error
}
