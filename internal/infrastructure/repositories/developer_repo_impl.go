package repositories

import (
	"context"
	"errors"

	"appforge.backend/internal/domain/entities"
	domainerrors "appforge.backend/internal/domain/errors"
	"appforge.backend/internal/infrastructure/models"
	"appforge.backend/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeveloperRepository struct {
	db *gorm.DB
}

func NewDeveloperRepository(db *gorm.DB) *DeveloperRepository {
	return &DeveloperRepository{db: db}
}

func (r *DeveloperRepository) Create(ctx context.Context, dev *entities.Developer) error {
	m := r.toModel(dev)
	if m.ID == uuid.Nil {
		m.ID = utils.NewID()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	dev.ID = m.ID
	dev.CreatedAt = m.CreatedAt
	dev.UpdatedAt = m.UpdatedAt
	return nil
}

func (r *DeveloperRepository) FindByKeyHash(ctx context.Context, keyHash string) (*entities.Developer, error) {
	var m models.Developer
	if err := r.db.WithContext(ctx).Where("api_key_hash = ?", keyHash).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *DeveloperRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Developer, error) {
	var m models.Developer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

func (r *DeveloperRepository) toEntity(m *models.Developer) *entities.Developer {
	return &entities.Developer{
		ID:         m.ID,
		Name:       m.Name,
		Role:       entities.DevRole(m.Role),
		APIKeyHash: m.APIKeyHash,
		IsActive:   m.IsActive,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

func (r *DeveloperRepository) toModel(e *entities.Developer) *models.Developer {
	return &models.Developer{
		ID:         e.ID,
		Name:       e.Name,
		Role:       string(e.Role),
		APIKeyHash: e.APIKeyHash,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}
