package auth

import (
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/Chiggy-Playz/Todo-API/internal/model"
)

func TestGenerateAPIKey_Format(t *testing.T) {
	t.Parallel()

	key, err := GenerateAPIKey()
	if err != nil {
		t.Fatalf("GenerateAPIKey failed: %v", err)
	}

	// 32 bytes base64url without padding is 43 chars.
	if len(key) != 43 {
		t.Errorf("key length = %d, want 43", len(key))
	}

	decoded, err := base64.RawURLEncoding.DecodeString(key)
	if err != nil {
		t.Fatalf("key is not valid base64url: %v", err)
	}
	if len(decoded) != keySecretBytes {
		t.Errorf("decoded length = %d, want %d", len(decoded), keySecretBytes)
	}

	// URL-safe: no characters that need escaping.
	if strings.ContainsAny(key, "+/=") {
		t.Errorf("key contains non-URL-safe characters: %s", key)
	}
}

func TestGenerateAPIKey_Unique(t *testing.T) {
	t.Parallel()

	const numKeys = 100
	seen := make(map[string]bool, numKeys)

	for i := 0; i < numKeys; i++ {
		key, err := GenerateAPIKey()
		if err != nil {
			t.Fatalf("GenerateAPIKey failed: %v", err)
		}
		if seen[key] {
			t.Errorf("duplicate key at iteration %d", i)
		}
		seen[key] = true
	}
}

func TestCacheKey_Deterministic(t *testing.T) {
	t.Parallel()

	a := CacheKey("some-api-key")
	b := CacheKey("some-api-key")
	if a != b {
		t.Errorf("CacheKey not deterministic: %s != %s", a, b)
	}

	c := CacheKey("other-api-key")
	if a == c {
		t.Error("distinct keys should produce distinct cache keys")
	}

	// Cache key must never contain the raw credential.
	if strings.Contains(a, "some-api-key") {
		t.Error("cache key leaks raw credential")
	}
	if len(a) != 32 {
		t.Errorf("cache key length = %d, want 32", len(a))
	}
}

func TestUserContext_RoundTrip(t *testing.T) {
	t.Parallel()

	user := &model.User{ID: 42, Name: "Alice", Email: "alice@example.com"}
	ctx := ContextWithUser(context.Background(), user)

	got := UserFromContext(ctx)
	if got == nil {
		t.Fatal("UserFromContext returned nil")
	}
	if got.ID != 42 {
		t.Errorf("ID = %d, want 42", got.ID)
	}
}

func TestUserFromContext_Missing(t *testing.T) {
	t.Parallel()

	if got := UserFromContext(context.Background()); got != nil {
		t.Errorf("expected nil user, got %+v", got)
	}
}

func TestMustUserFromContext_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for missing user context")
		}
	}()
	MustUserFromContext(context.Background())
}
