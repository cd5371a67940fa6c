package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// SecretType is the closed set of credential kinds a project can store
type SecretType string

const (
	SecretGithubPAT             SecretType = "GITHUB_PAT"
	SecretAppleASCKeyID         SecretType = "APPLE_ASC_KEY_ID"
	SecretAppleASCIssuerID      SecretType = "APPLE_ASC_ISSUER_ID"
	SecretAppleASCP8B64         SecretType = "APPLE_ASC_P8_B64"
	SecretAndroidUploadJKSB64   SecretType = "ANDROID_UPLOAD_JKS_B64"
	SecretAndroidUploadJKSPass  SecretType = "ANDROID_UPLOAD_JKS_PASS"
	SecretAndroidUploadKeyAlias SecretType = "ANDROID_UPLOAD_KEY_ALIAS"
	SecretAndroidUploadKeyPass  SecretType = "ANDROID_UPLOAD_KEY_PASS"
	SecretGooglePlaySAB64       SecretType = "GOOGLE_PLAY_SA_B64"
)

var secretTypes = map[SecretType]struct{}{
	SecretGithubPAT:             {},
	SecretAppleASCKeyID:         {},
	SecretAppleASCIssuerID:      {},
	SecretAppleASCP8B64:         {},
	SecretAndroidUploadJKSB64:   {},
	SecretAndroidUploadJKSPass:  {},
	SecretAndroidUploadKeyAlias: {},
	SecretAndroidUploadKeyPass:  {},
	SecretGooglePlaySAB64:       {},
}

// ParseSecretType maps a route param onto the closed enumeration,
// case-insensitively. ok is false for any unknown type.
func ParseSecretType(s string) (SecretType, bool) {
	st := SecretType(strings.ToUpper(s))
	_, ok := secretTypes[st]
	return st, ok
}

// Secret is one encrypted value per (project, type) pair. Enc is the
// vault envelope; the plaintext never appears outside a download call.
type Secret struct {
	ID        uuid.UUID  `json:"id"`
	ProjectID uuid.UUID  `json:"projectId"`
	Type      SecretType `json:"type"`
	Enc       string     `json:"-"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// SecretMetadata is what list endpoints expose: never the value
type SecretMetadata struct {
	Type      SecretType `json:"type"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}
