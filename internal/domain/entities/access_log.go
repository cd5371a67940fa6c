package entities

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction tags an access-log entry
type AuditAction string

const (
	AuditSecretUpsert      AuditAction = "SECRET_UPSERT"
	AuditSecretDownload    AuditAction = "SECRET_DOWNLOAD"
	AuditDevKeyCreate      AuditAction = "DEVKEY_CREATE"
	AuditGithubSyncSecrets AuditAction = "GITHUB_SYNC_SECRETS"
)

// AccessLogEntry is an immutable audit record. The core only appends;
// entries are never mutated or deleted.
type AccessLogEntry struct {
	ID        uuid.UUID   `json:"id"`
	DevID     uuid.UUID   `json:"devId"`
	IP        string      `json:"ip"`
	Action    AuditAction `json:"action"`
	Meta      string      `json:"meta"`
	CreatedAt time.Time   `json:"createdAt"`
}
