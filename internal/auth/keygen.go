// Package auth provides credential generation and request-context helpers.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// keySecretBytes is the number of random bytes in a generated API key.
// 32 bytes gives 256 bits of entropy; base64url-encoded it is 43 chars.
const keySecretBytes = 32

// GenerateAPIKey creates a new opaque, URL-safe API key.
// The key is shown to the caller exactly once at registration and is
// stored verbatim for equality lookup; there is no recovery flow.
func GenerateAPIKey() (string, error) {
	buf := make([]byte, keySecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// CacheKey derives a Redis cache key from a raw API key.
// Raw credentials never appear as cache keys.
func CacheKey(apiKey string) string {
	sum := sha256.Sum256([]byte(apiKey))
	return hex.EncodeToString(sum[:16])
}
