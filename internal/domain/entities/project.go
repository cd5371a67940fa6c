package entities

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a mobile/web project owned by a developer
type Project struct {
	ID             uuid.UUID `json:"id"`
	OwnerDevID     uuid.UUID `json:"ownerDevId"`
	Name           string    `json:"name"`
	PublicSlug     string    `json:"publicSlug,omitempty"`
	Domain         string    `json:"domain"`
	IOSBundleID    string    `json:"iosBundleId,omitempty"`
	IOSScheme      string    `json:"iosScheme,omitempty"`
	AndroidPackage string    `json:"androidPackage,omitempty"`
	GithubOwner    string    `json:"githubOwner,omitempty"`
	GithubRepo     string    `json:"githubRepo,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// CreateProjectInput represents input for creating a project
type CreateProjectInput struct {
	Name           string `json:"name" binding:"required,min=2"`
	Domain         string `json:"domain" binding:"required"`
	IOSBundleID    string `json:"iosBundleId"`
	IOSScheme      string `json:"iosScheme"`
	AndroidPackage string `json:"androidPackage"`
	PublicSlug     string `json:"publicSlug"`
}

// UpdateProjectInput represents a partial project update; nil fields
// are left untouched.
type UpdateProjectInput struct {
	Name           *string `json:"name"`
	Domain         *string `json:"domain"`
	IOSBundleID    *string `json:"iosBundleId"`
	IOSScheme      *string `json:"iosScheme"`
	AndroidPackage *string `json:"androidPackage"`
	GithubOwner    *string `json:"githubOwner"`
	GithubRepo     *string `json:"githubRepo"`
	PublicSlug     *string `json:"publicSlug"`
}
