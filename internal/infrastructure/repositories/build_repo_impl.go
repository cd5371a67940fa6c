package repositories

import (
	"context"
	"time"

	"appforge.backend/internal/domain/entities"
	"appforge.backend/internal/infrastructure/models"
	"appforge.backend/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BuildRepository struct {
	db *gorm.DB
}

func NewBuildRepository(db *gorm.DB) *BuildRepository {
	return &BuildRepository{db: db}
}

func (r *BuildRepository) Create(ctx context.Context, build *entities.Build) error {
	m := r.toModel(build)
	if m.ID == uuid.Nil {
		m.ID = utils.NewID()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	build.ID = m.ID
	build.CreatedAt = m.CreatedAt
	build.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *BuildRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.Build, error) {
	var ms []models.Build
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Build, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *BuildRepository) GetDispatchedBefore(ctx context.Context, cutoff time.Time, limit int) ([]*entities.Build, error) {
	var ms []models.Build
	if err := r.db.WithContext(ctx).
		Where("status = ? AND created_at < ?", string(entities.BuildDispatched), cutoff).
		Limit(limit).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Build, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *BuildRepository) MarkStale(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Build{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":     string(entities.BuildStale),
			"updated_at": time.Now(),
		}).Error
}

func (r *BuildRepository) toEntity(m *models.Build) *entities.Build {
	return &entities.Build{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Platform:  m.Platform,
		Workflow:  m.Workflow,
		Ref:       m.Ref,
		Status:    entities.BuildStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func (r *BuildRepository) toModel(e *entities.Build) *models.Build {
	return &models.Build{
		ID:        e.ID,
		ProjectID: e.ProjectID,
		Platform:  e.Platform,
		Workflow:  e.Workflow,
		Ref:       e.Ref,
		Status:    string(e.Status),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
