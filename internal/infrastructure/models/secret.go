package models

import (
	"time"

	"github.com/google/uuid"
)

// Secret holds one vault envelope per (project, type). The composite
// unique index is what makes the upsert race-free.
type Secret struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_secrets_project_type"`
	Type      string    `gorm:"type:varchar(40);not null;uniqueIndex:idx_secrets_project_type"`
	Enc       string    `gorm:"type:text;not null"` // JSON {iv,ct,tag}, all base64
	CreatedAt time.Time
	UpdatedAt time.Time
}
