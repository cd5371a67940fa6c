package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrDecryptFailed covers every Open failure past envelope parsing:
	// wrong key, flipped ciphertext or tag bits, reused envelope parts.
	ErrDecryptFailed = errors.New("vault: decryption failed")

	randomRead = rand.Read
)

// envelope is the persisted ciphertext format: nonce, ciphertext and
// authentication tag, each base64 and independently recoverable.
type envelope struct {
	IV  string `json:"iv"`
	CT  string `json:"ct"`
	Tag string `json:"tag"`
}

// Vault seals and opens secret values with AES-256-GCM. The key is
// process-wide, loaded once at startup, and never stored next to the
// ciphertext. Seal and Open are stateless and safe for concurrent use.
type Vault struct {
	aead cipher.AEAD
}

// NewVault builds a vault from a base64-encoded 32-byte master key.
func NewVault(masterKeyB64 string) (*Vault, error) {
	key, err := base64.StdEncoding.DecodeString(masterKeyB64)
	if err != nil {
		return nil, errors.New("vault: master key is not valid base64")
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("vault: master key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Vault{aead: aead}, nil
}

// Seal encrypts plaintext under a fresh random 96-bit nonce and returns
// the JSON envelope. Nonces never repeat under a fixed key, so repeated
// Seal calls on the same plaintext yield different envelopes.
func (v *Vault) Seal(plaintext string) (string, error) {
	nonce := make([]byte, v.aead.NonceSize())
	if _, err := randomRead(nonce); err != nil {
		return "", fmt.Errorf("vault: nonce generation failed: %w", err)
	}

	sealed := v.aead.Seal(nil, nonce, []byte(plaintext), nil)
	tagAt := len(sealed) - v.aead.Overhead()

	enc, err := json.Marshal(envelope{
		IV:  base64.StdEncoding.EncodeToString(nonce),
		CT:  base64.StdEncoding.EncodeToString(sealed[:tagAt]),
		Tag: base64.StdEncoding.EncodeToString(sealed[tagAt:]),
	})
	if err != nil {
		return "", err
	}
	return string(enc), nil
}

// Open decrypts an envelope produced by Seal. Any tampering with the
// nonce, ciphertext or tag, and any key mismatch, returns
// ErrDecryptFailed rather than corrupted plaintext.
func (v *Vault) Open(enc string) (string, error) {
	var e envelope
	if err := json.Unmarshal([]byte(enc), &e); err != nil {
		return "", ErrDecryptFailed
	}

	nonce, err := base64.StdEncoding.DecodeString(e.IV)
	if err != nil || len(nonce) != v.aead.NonceSize() {
		return "", ErrDecryptFailed
	}
	ct, err := base64.StdEncoding.DecodeString(e.CT)
	if err != nil {
		return "", ErrDecryptFailed
	}
	tag, err := base64.StdEncoding.DecodeString(e.Tag)
	if err != nil || len(tag) != v.aead.Overhead() {
		return "", ErrDecryptFailed
	}

	plain, err := v.aead.Open(nil, nonce, append(ct, tag...), nil)
	if err != nil {
		return "", ErrDecryptFailed
	}
	return string(plain), nil
}
