package repositories

import (
	"context"

	"appforge.backend/internal/domain/entities"
	"appforge.backend/internal/infrastructure/models"
	"appforge.backend/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessLogRepository is append-only: entries are never updated or
// deleted here.
type AccessLogRepository struct {
	db *gorm.DB
}

func NewAccessLogRepository(db *gorm.DB) *AccessLogRepository {
	return &AccessLogRepository{db: db}
}

func (r *AccessLogRepository) Append(ctx context.Context, entry *entities.AccessLogEntry) error {
	m := &models.AccessLog{
		ID:     entry.ID,
		DevID:  entry.DevID,
		IP:     entry.IP,
		Action: string(entry.Action),
		Meta:   entry.Meta,
	}
	if m.ID == uuid.Nil {
		m.ID = utils.NewID()
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	entry.ID = m.ID
	entry.CreatedAt = m.CreatedAt
	return nil
}

func (r *AccessLogRepository) List(ctx context.Context, offset, limit int) ([]*entities.AccessLogEntry, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.AccessLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Order("created_at DESC").Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var ms []models.AccessLog
	if err := query.Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*entities.AccessLogEntry, 0, len(ms))
	for i := range ms {
		items = append(items, &entities.AccessLogEntry{
			ID:        ms[i].ID,
			DevID:     ms[i].DevID,
			IP:        ms[i].IP,
			Action:    entities.AuditAction(ms[i].Action),
			Meta:      ms[i].Meta,
			CreatedAt: ms[i].CreatedAt,
		})
	}
	return items, total, nil
}
