package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Chiggy-Playz/Todo-API/internal/model"
)

const (
	// identityCachePrefix is the Redis key prefix for resolved identities.
	identityCachePrefix = "identity:"
	// identityCacheTTL bounds how long a resolved identity is reused
	// without a database lookup. Keys are never rotated or revoked, so a
	// short TTL is purely a hedge against manual database edits.
	identityCacheTTL = 5 * time.Minute
)

// cachedUser is the Redis representation of a resolved user.
// The raw API key is never stored in the cache.
type cachedUser struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// GetUser retrieves a cached resolved user by hashed-credential cache key.
// Returns nil with no error on a cache miss; resolution falls through to
// the database.
func (c *Cache) GetUser(ctx context.Context, cacheKey string) (*model.User, error) {
	data, err := c.client.Get(ctx, identityCachePrefix+cacheKey).Bytes()
	if err != nil {
		// Cache miss (or Redis error) is not fatal for auth.
		return nil, nil //nolint:nilerr
	}

	var cached cachedUser
	if err := json.Unmarshal(data, &cached); err != nil {
		// Corrupted cache entry - treat as miss
		return nil, nil //nolint:nilerr
	}

	return &model.User{
		ID:        cached.ID,
		Name:      cached.Name,
		Email:     cached.Email,
		CreatedAt: cached.CreatedAt,
	}, nil
}

// SetUser caches a resolved user under the hashed-credential cache key.
func (c *Cache) SetUser(ctx context.Context, cacheKey string, user *model.User) error {
	cached := cachedUser{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("marshal cached user: %w", err)
	}

	return c.client.Set(ctx, identityCachePrefix+cacheKey, data, identityCacheTTL).Err()
}

// DeleteUser removes a cached resolved user.
func (c *Cache) DeleteUser(ctx context.Context, cacheKey string) error {
	return c.client.Del(ctx, identityCachePrefix+cacheKey).Err()
}
