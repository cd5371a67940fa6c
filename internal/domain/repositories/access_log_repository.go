package repositories

import (
	"context"

	"appforge.backend/internal/domain/entities"
)

type AccessLogRepository interface {
	Append(ctx context.Context, entry *entities.AccessLogEntry) error
	List(ctx context.Context, offset, limit int) ([]*entities.AccessLogEntry, int64, error)
}
