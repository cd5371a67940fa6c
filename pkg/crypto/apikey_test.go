package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSecretB64() string {
	return base64.StdEncoding.EncodeToString([]byte("hmac-secret-for-tests"))
}

func TestNewKeyHasher_Validation(t *testing.T) {
	_, err := NewKeyHasher("!!! not base64")
	assert.Error(t, err)

	_, err = NewKeyHasher("")
	assert.Error(t, err)

	h, err := NewKeyHasher(testSecretB64())
	require.NoError(t, err)
	assert.NotNil(t, h)
}

func TestKeyHasher_FingerprintDeterministic(t *testing.T) {
	h, err := NewKeyHasher(testSecretB64())
	require.NoError(t, err)

	a := h.Fingerprint("raw-key-1234567890")
	b := h.Fingerprint("raw-key-1234567890")
	assert.Equal(t, a, b)

	c := h.Fingerprint("raw-key-1234567891")
	assert.NotEqual(t, a, c)

	// Standard base64 of a 32-byte MAC.
	raw, err := base64.StdEncoding.DecodeString(a)
	require.NoError(t, err)
	assert.Len(t, raw, 32)
}

func TestKeyHasher_SecretChangesFingerprint(t *testing.T) {
	h1, err := NewKeyHasher(testSecretB64())
	require.NoError(t, err)
	h2, err := NewKeyHasher(base64.StdEncoding.EncodeToString([]byte("a different secret")))
	require.NoError(t, err)

	assert.NotEqual(t, h1.Fingerprint("same-key"), h2.Fingerprint("same-key"))
}

func TestFingerprintEqual(t *testing.T) {
	assert.True(t, FingerprintEqual("abc", "abc"))
	assert.False(t, FingerprintEqual("abc", "abd"))
	assert.False(t, FingerprintEqual("abc", "abcd"))
	assert.True(t, FingerprintEqual("", ""))
}

func TestGenerateAPIKey(t *testing.T) {
	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		key, err := GenerateAPIKey()
		require.NoError(t, err)

		raw, err := base64.RawURLEncoding.DecodeString(key)
		require.NoError(t, err)
		assert.Len(t, raw, 32)
		assert.GreaterOrEqual(t, len(key), MinAPIKeyLength)

		_, dup := seen[key]
		assert.False(t, dup)
		seen[key] = struct{}{}
	}
}
