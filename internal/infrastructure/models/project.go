package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerDevID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(100);not null"`
	PublicSlug     *string   `gorm:"type:varchar(32);uniqueIndex"`
	Domain         string    `gorm:"type:varchar(255);not null"`
	IOSBundleID    string    `gorm:"type:varchar(255)"`
	IOSScheme      string    `gorm:"type:varchar(255)"`
	AndroidPackage string    `gorm:"type:varchar(255)"`
	GithubOwner    string    `gorm:"type:varchar(100)"`
	GithubRepo     string    `gorm:"type:varchar(100)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
