// Package service provides business logic for the application.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Chiggy-Playz/Todo-API/internal/metrics"
	"github.com/Chiggy-Playz/Todo-API/internal/model"
	"github.com/Chiggy-Playz/Todo-API/internal/repository"
)

// Task service errors.
var (
	// ErrTaskNotFound is returned both when no task has the given ID and
	// when the task belongs to another user. The two cases are deliberately
	// indistinguishable so non-owners learn nothing about existence.
	ErrTaskNotFound  = errors.New("task not found")
	ErrEmptyTitle    = errors.New("title must not be empty")
	ErrInvalidStatus = errors.New("status must be pending or completed")
)

// TaskService handles ownership-scoped task operations.
// Every method takes the resolved caller's user ID explicitly; there is no
// ambient identity state.
type TaskService struct {
	repo    *repository.Repository
	metrics metrics.Recorder
}

// NewTaskService creates a new TaskService.
func NewTaskService(repo *repository.Repository, recorder metrics.Recorder) *TaskService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &TaskService{
		repo:    repo,
		metrics: recorder,
	}
}

// CreateTaskInput defines input for creating a task.
type CreateTaskInput struct {
	Title       string
	Description *string
}

// CreateTask creates a new pending task owned by userID.
func (s *TaskService) CreateTask(ctx context.Context, userID int64, input CreateTaskInput) (*model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	task := &model.Task{
		Title:       title,
		Description: input.Description,
		UserID:      userID,
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.metrics.IncTaskCreated()

	return task, nil
}

// ListTasks returns all tasks owned by userID in creation order.
// Returns an empty slice, never an error, when the user owns no tasks.
func (s *TaskService) ListTasks(ctx context.Context, userID int64) ([]*model.Task, error) {
	tasks, err := s.repo.ListTasksByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTaskInput defines a partial update. Nil fields are left unchanged;
// an input with all fields nil is a valid no-op.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// UpdateTask applies the provided fields to a task owned by userID and
// returns the resulting record. An invalid status is rejected before any
// store work.
func (s *TaskService) UpdateTask(ctx context.Context, userID, taskID int64, input UpdateTaskInput) (*model.Task, error) {
	update := repository.TaskUpdate{
		Description: input.Description,
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrEmptyTitle
		}
		update.Title = &title
	}

	if input.Status != nil {
		status := model.TaskStatus(*input.Status)
		if !status.IsValid() {
			return nil, ErrInvalidStatus
		}
		update.Status = &status
	}

	task, err := s.repo.UpdateTask(ctx, taskID, userID, update)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if !update.IsEmpty() {
		s.metrics.IncTaskUpdated()
	}

	return task, nil
}

// DeleteTask removes a task owned by userID.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID int64) error {
	if err := s.repo.DeleteTask(ctx, taskID, userID); err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			return ErrTaskNotFound
		}
		return fmt.Errorf("failed to delete task: %w", err)
	}

	s.metrics.IncTaskDeleted()

	return nil
}
