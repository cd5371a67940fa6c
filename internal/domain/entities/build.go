package entities

import (
	"time"

	"github.com/google/uuid"
)

// BuildStatus tracks a dispatched workflow record
type BuildStatus string

const (
	BuildDispatched BuildStatus = "dispatched"
	BuildStale      BuildStatus = "stale"
)

// Build records a workflow dispatch issued for a project
type Build struct {
	ID        uuid.UUID   `json:"id"`
	ProjectID uuid.UUID   `json:"projectId"`
	Platform  string      `json:"platform"`
	Workflow  string      `json:"workflow"`
	Ref       string      `json:"ref"`
	Status    BuildStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
