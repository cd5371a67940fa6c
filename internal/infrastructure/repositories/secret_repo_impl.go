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
	"gorm.io/gorm/clause"
)

type SecretRepository struct {
	db *gorm.DB
}

func NewSecretRepository(db *gorm.DB) *SecretRepository {
	return &SecretRepository{db: db}
}

// Upsert writes the single row for (projectID, type) in one statement.
// ON CONFLICT against the composite unique index resolves concurrent
// writers last-write-wins without a read-then-write race.
func (r *SecretRepository) Upsert(ctx context.Context, projectID uuid.UUID, secretType entities.SecretType, enc string) error {
	now := time.Now()
	m := &models.Secret{
		ID:        utils.NewID(),
		ProjectID: projectID,
		Type:      string(secretType),
		Enc:       enc,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"enc": enc, "updated_at": now}),
	}).Create(m).Error
}

func (r *SecretRepository) Find(ctx context.Context, projectID uuid.UUID, secretType entities.SecretType) (*entities.Secret, error) {
	var m models.Secret
	if err := r.db.WithContext(ctx).
		Where("project_id = ? AND type = ?", projectID, string(secretType)).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *SecretRepository) ListMetadata(ctx context.Context, projectID uuid.UUID) ([]*entities.SecretMetadata, error) {
	var ms []models.Secret
	if err := r.db.WithContext(ctx).
		Select("type", "created_at", "updated_at").
		Where("project_id = ?", projectID).
		Order("type ASC").
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.SecretMetadata, 0, len(ms))
	for i := range ms {
		items = append(items, &entities.SecretMetadata{
			Type:      entities.SecretType(ms[i].Type),
			CreatedAt: ms[i].CreatedAt,
			UpdatedAt: ms[i].UpdatedAt,
		})
	}
	return items, nil
}

func (r *SecretRepository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*entities.Secret, error) {
	var ms []models.Secret
	if err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Find(&ms).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.Secret, 0, len(ms))
	for i := range ms {
		items = append(items, r.toEntity(&ms[i]))
	}
	return items, nil
}

func (r *SecretRepository) toEntity(m *models.Secret) *entities.Secret {
	return &entities.Secret{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Type:      entities.SecretType(m.Type),
		Enc:       m.Enc,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
