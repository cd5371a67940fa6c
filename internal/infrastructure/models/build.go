package models

import (
	"time"

	"github.com/google/uuid"
)

type Build struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index"`
	Platform  string    `gorm:"type:varchar(20);not null"`
	Workflow  string    `gorm:"type:varchar(255);not null"`
	Ref       string    `gorm:"type:varchar(100);not null"`
	Status    string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
