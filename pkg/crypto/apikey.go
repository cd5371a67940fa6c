package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
)

// MinAPIKeyLength is the shortest raw key the authenticator will even
// hash; anything shorter is rejected outright.
const MinAPIKeyLength = 16

// KeyHasher produces storable fingerprints of raw API keys using a
// keyed one-way transform. Only the fingerprint is ever persisted.
type KeyHasher struct {
	secret []byte
}

// NewKeyHasher builds a hasher from a base64-encoded HMAC secret.
func NewKeyHasher(secretB64 string) (*KeyHasher, error) {
	secret, err := base64.StdEncoding.DecodeString(secretB64)
	if err != nil {
		return nil, errors.New("keyhasher: hmac secret is not valid base64")
	}
	if len(secret) == 0 {
		return nil, errors.New("keyhasher: hmac secret is empty")
	}
	return &KeyHasher{secret: secret}, nil
}

// Fingerprint returns the deterministic HMAC-SHA256 fingerprint of a
// raw API key, base64-encoded.
func (h *KeyHasher) Fingerprint(rawKey string) string {
	mac := hmac.New(sha256.New, h.secret)
	mac.Write([]byte(rawKey))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// FingerprintEqual compares two fingerprints in constant time. A length
// mismatch fails without revealing the difference; matching lengths are
// compared in time independent of the first differing byte.
func FingerprintEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	return hmac.Equal([]byte(a), []byte(b))
}

// GenerateAPIKey returns a fresh raw API key: 32 random bytes,
// base64url without padding. Shown to the caller exactly once.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := randomRead(buf); err != nil {
		return "", fmt.Errorf("failed to generate api key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
