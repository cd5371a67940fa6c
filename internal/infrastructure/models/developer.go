package models

import (
	"time"

	"github.com/google/uuid"
)

type Developer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(100);not null"`
	Role       string    `gorm:"type:varchar(20);not null"`
	APIKeyHash string    `gorm:"type:varchar(64);uniqueIndex;not null"` // HMAC-SHA256, base64
	IsActive   bool      `gorm:"default:true;not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
