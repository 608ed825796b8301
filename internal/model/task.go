// Package model defines domain entities for the application.
package model

import "time"

// TaskStatus represents the completion state of a task.
type TaskStatus string

const (
	StatusPending   TaskStatus = "pending"
	StatusCompleted TaskStatus = "completed"
)

// IsValid checks if the status is one of the enumerated values.
func (s TaskStatus) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Task represents a to-do item owned by exactly one user.
// Ownership is established at creation and immutable thereafter.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status"`
	UserID      int64      `json:"-"`
	CreatedAt   time.Time  `json:"created_at"`
}

// IsCompleted returns true if the task has been marked completed.
func (t *Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}
