package repositories

import (
	"context"
	"errors"
	"time"

	"appforge.backend/internal/domain/entities"
	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/infrastructure/models"
	"appforge.backend/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, project *entities.Project) error {
	m := r.toModel(project)
	if m.ID == uuid.Nil {
		m.ID = utils.NewID()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	project.ID = m.ID
	project.CreatedAt = m.CreatedAt
	project.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *ProjectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Project, error) {
	var m models.Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ProjectRepository) FindByIDAndOwner(ctx context.Context, id, ownerDevID uuid.UUID) (*entities.Project, error) {
	var m models.Project
	if err := r.db.WithContext(ctx).
		Where("id = ? AND owner_dev_id = ?", id, ownerDevID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ProjectRepository) FindBySlug(ctx context.Context, slug string) (*entities.Project, error) {
	var m models.Project
	if err := r.db.WithContext(ctx).Where("public_slug = ?", slug).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerDevID uuid.UUID) ([]*entities.Project, error) {
	var ms []models.Project
	if err := r.db.WithContext(ctx).
		Where("owner_dev_id = ?", ownerDevID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Project, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *ProjectRepository) Update(ctx context.Context, project *entities.Project) error {
	var slug *string
	if project.PublicSlug != "" {
		s := project.PublicSlug
		slug = &s
	}
	updates := map[string]interface{}{
		"name":            project.Name,
		"public_slug":     slug,
		"domain":          project.Domain,
		"ios_bundle_id":   project.IOSBundleID,
		"ios_scheme":      project.IOSScheme,
		"android_package": project.AndroidPackage,
		"github_owner":    project.GithubOwner,
		"github_repo":     project.GithubRepo,
		"updated_at":      time.Now(),
	}

	result := r.db.WithContext(ctx).
		Model(&models.Project{}).
		Where("id = ?", project.ID).
		Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes the project together with its secrets and builds in
// one transaction.
func (r *ProjectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Secret{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&models.Build{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Project{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrNotFound
		}
		return nil
	})
}

func (r *ProjectRepository) toEntity(m *models.Project) *entities.Project {
	slug := ""
	if m.PublicSlug != nil {
		slug = *m.PublicSlug
	}
	return &entities.Project{
		ID:             m.ID,
		OwnerDevID:     m.OwnerDevID,
		Name:           m.Name,
		PublicSlug:     slug,
		Domain:         m.Domain,
		IOSBundleID:    m.IOSBundleID,
		IOSScheme:      m.IOSScheme,
		AndroidPackage: m.AndroidPackage,
		GithubOwner:    m.GithubOwner,
		GithubRepo:     m.GithubRepo,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *ProjectRepository) toModel(e *entities.Project) *models.Project {
	var slug *string
	if e.PublicSlug != "" {
		s := e.PublicSlug
		slug = &s
	}
	return &models.Project{
		ID:             e.ID,
		OwnerDevID:     e.OwnerDevID,
		Name:           e.Name,
		PublicSlug:     slug,
		Domain:         e.Domain,
		IOSBundleID:    e.IOSBundleID,
		IOSScheme:      e.IOSScheme,
		AndroidPackage: e.AndroidPackage,
		GithubOwner:    e.GithubOwner,
		GithubRepo:     e.GithubRepo,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}
