package entities

import (
	"time"

	"github.com/google/uuid"
)

// DevRole represents developer roles
type DevRole string

const (
	DevRoleAdmin DevRole = "ADMIN"
	DevRoleDev   DevRole = "DEV"
)

// Developer represents an API caller. Only the fingerprint of the API
// key is stored; the raw key is shown once at issuance.
type Developer struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Name       string    `json:"name"`
	Role       DevRole   `json:"role"`
	APIKeyHash string    `json:"-" gorm:"uniqueIndex"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// CreateDevKeyInput represents input for issuing a developer key
type CreateDevKeyInput struct {
	Name string  `json:"name" binding:"required,min=2,max=100"`
	Role DevRole `json:"role"`
}

// CreateDevKeyResponse carries the raw key back to the caller once
type CreateDevKeyResponse struct {
	DeveloperID uuid.UUID `json:"developerId"`
	APIKey      string    `json:"apiKey"`
}

// AuthenticatedDev is the identity attached to a request after the
// authenticator accepts it.
type AuthenticatedDev struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role DevRole   `json:"role"`
}
