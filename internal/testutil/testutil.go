// Package testutil provides shared helpers for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/Chiggy-Playz/Todo-API/internal/auth"
	"github.com/Chiggy-Playz/Todo-API/internal/migrations"
	"github.com/Chiggy-Playz/Todo-API/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

const advisoryLockID int64 = 710710

// AcquireDBLock grabs a global advisory lock to serialize DB tests.
func AcquireDBLock(ctx context.Context, pool *pgxpool.Pool) (func() error, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	if _, err := conn.Exec(ctx, "SELECT pg_advisory_lock($1)", advisoryLockID); err != nil {
		conn.Release()
		return nil, fmt.Errorf("acquire advisory lock: %w", err)
	}

	unlock := func() error {
		defer conn.Release()
		if _, err := conn.Exec(ctx, "SELECT pg_advisory_unlock($1)", advisoryLockID); err != nil {
			return fmt.Errorf("release advisory lock: %w", err)
		}
		return nil
	}

	return unlock, nil
}

// ResetSchema rolls the migration set back to zero and reapplies it,
// leaving empty users and tasks tables.
func ResetSchema(ctx context.Context, databaseURL string) error {
	return migrations.Reset(ctx, databaseURL)
}

// TruncateTables empties the users and tasks tables between tests.
// Cheaper than a full migration reset when the schema is already in place.
func TruncateTables(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE tasks, users RESTART IDENTITY CASCADE")
	if err != nil {
		return fmt.Errorf("truncate tables: %w", err)
	}
	return nil
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// ============================================================================
// Test Data Factories
// ============================================================================

// UniqueEmail returns an email address unique within the test run.
func UniqueEmail(prefix string) string {
	return fmt.Sprintf("%s-%d@example.com", prefix, time.Now().UnixNano())
}

// NewTestUser builds a user with a freshly generated API key, ready to be
// inserted through the repository.
func NewTestUser(t testing.TB, emailPrefix string) *model.User {
	t.Helper()
	key, err := auth.GenerateAPIKey()
	if err != nil {
		t.Fatalf("GenerateAPIKey failed: %v", err)
	}
	return &model.User{
		Name:   "Test User",
		Email:  UniqueEmail(emailPrefix),
		APIKey: key,
	}
}

// NewTestTask builds a pending task owned by the given user.
func NewTestTask(t testing.TB, userID int64, title string) *model.Task {
	t.Helper()
	return &model.Task{
		Title:  title,
		Status: model.StatusPending,
		UserID: userID,
	}
}
