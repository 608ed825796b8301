//go:build integration

package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/Chiggy-Playz/Todo-API/internal/model"
	"github.com/Chiggy-Playz/Todo-API/internal/testutil"
)

// ============================================================================
// Task Repository Integration Tests
// ============================================================================

func TestIntegrationTaskRepository_CreateTask(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)
	userID := createTestUser(ctx, t, repo, "taskcreate")

	task := testutil.NewTestTask(t, userID, "Write report")

	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if task.ID == 0 {
		t.Error("ID should be assigned by the database")
	}
	if task.Status != model.StatusPending {
		t.Errorf("Status = %q, want pending", task.Status)
	}
	if task.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestIntegrationTaskRepository_CreateTask_WithDescription(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)
	userID := createTestUser(ctx, t, repo, "taskdesc")

	desc := "quarterly numbers"
	task := testutil.NewTestTask(t, userID, "Write report")
	task.Description = &desc

	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	retrieved, err := repo.GetTaskByID(ctx, task.ID, userID)
	if err != nil {
		t.Fatalf("GetTaskByID failed: %v", err)
	}
	if retrieved.Description == nil || *retrieved.Description != desc {
		t.Errorf("Description = %v, want %q", retrieved.Description, desc)
	}
}

func TestIntegrationTaskRepository_ListTasksByUserID(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)
	userID := createTestUser(ctx, t, repo, "list")
	otherID := createTestUser(ctx, t, repo, "listother")

	titles := []string{"first", "second", "third"}
	for _, title := range titles {
		if err := repo.CreateTask(ctx, testutil.NewTestTask(t, userID, title)); err != nil {
			t.Fatalf("CreateTask(%q) failed: %v", title, err)
		}
	}
	if err := repo.CreateTask(ctx, testutil.NewTestTask(t, otherID, "not yours")); err != nil {
		t.Fatalf("CreateTask (other user) failed: %v", err)
	}

	tasks, err := repo.ListTasksByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("ListTasksByUserID failed: %v", err)
	}

	if len(tasks) != len(titles) {
		t.Fatalf("Expected %d tasks, got %d", len(titles), len(tasks))
	}
	// Insertion order is preserved.
	for i, title := range titles {
		if tasks[i].Title != title {
			t.Errorf("tasks[%d].Title = %q, want %q", i, tasks[i].Title, title)
		}
	}
}

func TestIntegrationTaskRepository_ListTasksByUserID_Empty(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)
	userID := createTestUser(ctx, t, repo, "listempty")

	tasks, err := repo.ListTasksByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("ListTasksByUserID failed: %v", err)
	}
	if tasks == nil {
		t.Error("Expected empty slice, got nil")
	}
	if len(tasks) != 0 {
		t.Errorf("Expected no tasks, got %d", len(tasks))
	}
}

func TestIntegrationTaskRepository_UpdateTask(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)
	userID := createTestUser(ctx, t, repo, "update")

	desc := "original"
	task := testutil.NewTestTask(t, userID, "Original title")
	task.Description = &desc
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	newTitle := "Updated title"
	completed := model.StatusCompleted
	updated, err := repo.UpdateTask(ctx, task.ID, userID, TaskUpdate{
		Title:  &newTitle,
		Status: &completed,
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	if updated.Title != newTitle {
		t.Errorf("Title = %q, want %q", updated.Title, newTitle)
	}
	if updated.Status != model.StatusCompleted {
		t.Errorf("Status = %q, want completed", updated.Status)
	}
	// Fields not named in the update keep their old values.
	if updated.Description == nil || *updated.Description != desc {
		t.Errorf("Description = %v, want %q", updated.Description, desc)
	}
}

func TestIntegrationTaskRepository_UpdateTask_EmptyUpdate(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)
	userID := createTestUser(ctx, t, repo, "noop")

	task := testutil.NewTestTask(t, userID, "Unchanged")
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	updated, err := repo.UpdateTask(ctx, task.ID, userID, TaskUpdate{})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	if updated.Title != "Unchanged" {
		t.Errorf("Title = %q, want unchanged", updated.Title)
	}
	if updated.Status != model.StatusPending {
		t.Errorf("Status = %q, want pending", updated.Status)
	}
}

func TestIntegrationTaskRepository_UpdateTask_CrossTenant(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)
	ownerID := createTestUser(ctx, t, repo, "owner")
	intruderID := createTestUser(ctx, t, repo, "intruder")

	task := testutil.NewTestTask(t, ownerID, "Private")
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	newTitle := "Hijacked"
	_, err := repo.UpdateTask(ctx, task.ID, intruderID, TaskUpdate{Title: &newTitle})
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound for other tenant, got: %v", err)
	}

	// Owner still sees the original title.
	retrieved, err := repo.GetTaskByID(ctx, task.ID, ownerID)
	if err != nil {
		t.Fatalf("GetTaskByID failed: %v", err)
	}
	if retrieved.Title != "Private" {
		t.Errorf("Title = %q, want Private", retrieved.Title)
	}
}

func TestIntegrationTaskRepository_DeleteTask(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)
	userID := createTestUser(ctx, t, repo, "delete")

	task := testutil.NewTestTask(t, userID, "Ephemeral")
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if err := repo.DeleteTask(ctx, task.ID, userID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	if _, err := repo.GetTaskByID(ctx, task.ID, userID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound after delete, got: %v", err)
	}

	// Second delete reports not found.
	if err := repo.DeleteTask(ctx, task.ID, userID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound on double delete, got: %v", err)
	}
}

func TestIntegrationTaskRepository_DeleteTask_CrossTenant(t *testing.T) {
	ctx, repo := newRepoTestEnv(t)
	ownerID := createTestUser(ctx, t, repo, "delowner")
	intruderID := createTestUser(ctx, t, repo, "delintruder")

	task := testutil.NewTestTask(t, ownerID, "Keep out")
	if err := repo.CreateTask(ctx, task); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if err := repo.DeleteTask(ctx, task.ID, intruderID); !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("Expected ErrTaskNotFound for other tenant, got: %v", err)
	}

	if _, err := repo.GetTaskByID(ctx, task.ID, ownerID); err != nil {
		t.Errorf("Task should survive cross-tenant delete, got: %v", err)
	}
}

func createTestUser(ctx context.Context, t *testing.T, repo *Repository, prefix string) int64 {
	t.Helper()
	user := testutil.NewTestUser(t, prefix)
	if err := repo.CreateUser(ctx, user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user.ID
}
