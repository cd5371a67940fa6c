package models

import (
	"time"

	"github.com/google/uuid"
)

type AccessLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	DevID     uuid.UUID `gorm:"type:uuid;not null;index"`
	IP        string    `gorm:"type:varchar(45);not null"`
	Action    string    `gorm:"type:varchar(40);not null;index"`
	Meta      string    `gorm:"type:text"`
	CreatedAt time.Time
}
