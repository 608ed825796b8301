package service

import (
	"context"
	"errors"
	"testing"
)

// Validation paths reject bad input before any repository work, so these
// tests run against a nil repository.

func TestTaskService_CreateTask_EmptyTitle(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(nil, nil)

	tests := []struct {
		name  string
		title string
	}{
		{"empty", ""},
		{"spaces only", "   "},
		{"tabs and newlines", "\t\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := svc.CreateTask(context.Background(), 1, CreateTaskInput{Title: tt.title})
			if !errors.Is(err, ErrEmptyTitle) {
				t.Errorf("expected ErrEmptyTitle, got: %v", err)
			}
		})
	}
}

func TestTaskService_UpdateTask_InvalidStatus(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(nil, nil)

	tests := []struct {
		name   string
		status string
	}{
		{"unknown value", "done"},
		{"empty", ""},
		{"uppercase", "PENDING"},
		{"padded", " completed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			status := tt.status
			_, err := svc.UpdateTask(context.Background(), 1, 1, UpdateTaskInput{Status: &status})
			if !errors.Is(err, ErrInvalidStatus) {
				t.Errorf("expected ErrInvalidStatus for %q, got: %v", tt.status, err)
			}
		})
	}
}

func TestTaskService_UpdateTask_EmptyTitle(t *testing.T) {
	t.Parallel()

	svc := NewTaskService(nil, nil)

	title := "   "
	_, err := svc.UpdateTask(context.Background(), 1, 1, UpdateTaskInput{Title: &title})
	if !errors.Is(err, ErrEmptyTitle) {
		t.Errorf("expected ErrEmptyTitle, got: %v", err)
	}
}

func TestIdentityService_Register_MissingFields(t *testing.T) {
	t.Parallel()

	svc := NewIdentityService(nil, nil)

	_, _, err := svc.Register(context.Background(), RegisterInput{Name: "", Email: "a@b.com"})
	if !errors.Is(err, ErrMissingName) {
		t.Errorf("expected ErrMissingName, got: %v", err)
	}

	_, _, err = svc.Register(context.Background(), RegisterInput{Name: "Alice", Email: "  "})
	if !errors.Is(err, ErrMissingEmail) {
		t.Errorf("expected ErrMissingEmail, got: %v", err)
	}
}
