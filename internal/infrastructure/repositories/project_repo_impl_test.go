package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"appforge.backend/internal/domain/entities"
	domainerrors "appforge.backend/internal/domain/errors"
)

func TestProjectRepository_CreateAndFinders(t *testing.T) {
	db := newTestDB(t)
	createProjectTable(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	p := &entities.Project{
		OwnerDevID: ownerID,
		Name:       "Shop App",
		PublicSlug: "shop-app",
		Domain:     "https://shop.example.com",
	}
	require.NoError(t, repo.Create(ctx, p))
	require.NotEqual(t, uuid.Nil, p.ID)

	byID, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "Shop App", byID.Name)

	bySlug, err := repo.FindBySlug(ctx, "shop-app")
	require.NoError(t, err)
	require.Equal(t, p.ID, bySlug.ID)

	owned, err := repo.FindByIDAndOwner(ctx, p.ID, ownerID)
	require.NoError(t, err)
	require.Equal(t, p.ID, owned.ID)

	// A foreign developer cannot see the project.
	_, err = repo.FindByIDAndOwner(ctx, p.ID, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProjectRepository_EmptySlugStoredAsNull(t *testing.T) {
	db := newTestDB(t)
	createProjectTable(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	// Two projects without a slug must not collide on the unique index.
	require.NoError(t, repo.Create(ctx, &entities.Project{OwnerDevID: uuid.New(), Name: "A", Domain: "https://a.example.com"}))
	require.NoError(t, repo.Create(ctx, &entities.Project{OwnerDevID: uuid.New(), Name: "B", Domain: "https://b.example.com"}))
}

func TestProjectRepository_ListByOwner(t *testing.T) {
	db := newTestDB(t)
	createProjectTable(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	ownerID := uuid.New()
	require.NoError(t, repo.Create(ctx, &entities.Project{OwnerDevID: ownerID, Name: "One", Domain: "https://one.example.com"}))
	require.NoError(t, repo.Create(ctx, &entities.Project{OwnerDevID: ownerID, Name: "Two", Domain: "https://two.example.com"}))
	require.NoError(t, repo.Create(ctx, &entities.Project{OwnerDevID: uuid.New(), Name: "Foreign", Domain: "https://x.example.com"}))

	items, err := repo.ListByOwner(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, items, 2)
}

func TestProjectRepository_Update(t *testing.T) {
	db := newTestDB(t)
	createProjectTable(t, db)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := &entities.Project{OwnerDevID: uuid.New(), Name: "Before", Domain: "https://before.example.com"}
	require.NoError(t, repo.Create(ctx, p))

	p.Name = "After"
	p.GithubOwner = "acme"
	p.GithubRepo = "shop"
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, "After", got.Name)
	require.Equal(t, "acme", got.GithubOwner)
	require.Equal(t, "shop", got.GithubRepo)

	err = repo.Update(ctx, &entities.Project{ID: uuid.New(), Name: "ghost"})
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestProjectRepository_DeleteCascades(t *testing.T) {
	db := newTestDB(t)
	createProjectTable(t, db)
	createSecretTable(t, db)
	createBuildTable(t, db)

	repo := NewProjectRepository(db)
	secretRepo := NewSecretRepository(db)
	buildRepo := NewBuildRepository(db)
	ctx := context.Background()

	p := &entities.Project{OwnerDevID: uuid.New(), Name: "Doomed", Domain: "https://doomed.example.com"}
	require.NoError(t, repo.Create(ctx, p))
	require.NoError(t, secretRepo.Upsert(ctx, p.ID, entities.SecretGithubPAT, "enc"))
	require.NoError(t, buildRepo.Create(ctx, &entities.Build{ProjectID: p.ID, Platform: "unknown", Workflow: "ci.yml", Ref: "main", Status: entities.BuildDispatched}))

	require.NoError(t, repo.Delete(ctx, p.ID))

	_, err := repo.FindByID(ctx, p.ID)
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	var secrets, builds int64
	require.NoError(t, db.Table("secrets").Where("project_id = ?", p.ID).Count(&secrets).Error)
	require.NoError(t, db.Table("builds").Where("project_id = ?", p.ID).Count(&builds).Error)
	require.Zero(t, secrets)
	require.Zero(t, builds)

	require.ErrorIs(t, repo.Delete(ctx, uuid.New()), domainerrors.ErrNotFound)
}
