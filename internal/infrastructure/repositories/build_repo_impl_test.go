package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"appforge.backend/internal/domain/entities"
	"appforge.backend/internal/infrastructure/models"
)

func TestBuildRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	createBuildTable(t, db)
	repo := NewBuildRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	b := &entities.Build{
		ProjectID: projectID,
		Platform:  "unknown",
		Workflow:  "ios-release.yml",
		Ref:       "main",
		Status:    entities.BuildDispatched,
	}
	require.NoError(t, repo.Create(ctx, b))
	require.NotEqual(t, uuid.Nil, b.ID)

	items, err := repo.ListByProject(ctx, projectID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, entities.BuildDispatched, items[0].Status)

	other, err := repo.ListByProject(ctx, uuid.New())
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestBuildRepository_StaleSweep(t *testing.T) {
	db := newTestDB(t)
	createBuildTable(t, db)
	repo := NewBuildRepository(db)
	ctx := context.Background()

	projectID := uuid.New()
	old := &models.Build{
		ID:        uuid.New(),
		ProjectID: projectID,
		Platform:  "unknown",
		Workflow:  "android-release.yml",
		Ref:       "main",
		Status:    string(entities.BuildDispatched),
		CreatedAt: time.Now().Add(-3 * time.Hour),
	}
	fresh := &models.Build{
		ID:        uuid.New(),
		ProjectID: projectID,
		Platform:  "unknown",
		Workflow:  "android-release.yml",
		Ref:       "main",
		Status:    string(entities.BuildDispatched),
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(old).Error)
	require.NoError(t, db.Create(fresh).Error)

	cutoff := time.Now().Add(-2 * time.Hour)
	stale, err := repo.GetDispatchedBefore(ctx, cutoff, 100)
	require.NoError(t, err)
	require.Len(t, stale, 1)
	require.Equal(t, old.ID, stale[0].ID)

	require.NoError(t, repo.MarkStale(ctx, []uuid.UUID{old.ID}))

	items, err := repo.ListByProject(ctx, projectID)
	require.NoError(t, err)
	statuses := map[uuid.UUID]entities.BuildStatus{}
	for _, it := range items {
		statuses[it.ID] = it.Status
	}
	require.Equal(t, entities.BuildStale, statuses[old.ID])
	require.Equal(t, entities.BuildDispatched, statuses[fresh.ID])

	// A second sweep finds nothing left dispatched before the cutoff.
	stale, err = repo.GetDispatchedBefore(ctx, cutoff, 100)
	require.NoError(t, err)
	require.Empty(t, stale)

	require.NoError(t, repo.MarkStale(ctx, nil))
}
