package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/Chiggy-Playz/Todo-API/internal/model"
)

// Common errors for task repository operations.
var (
	// ErrTaskNotFound covers both "no such task" and "task owned by someone
	// else"; callers must not be able to tell the two apart.
	ErrTaskNotFound = errors.New("task not found")
)

// TaskUpdate carries the fields of a partial update. Nil fields are left
// unchanged. An update with all fields nil is a no-op that returns the
// current row.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *model.TaskStatus
}

// IsEmpty returns true if no fields are set.
func (u TaskUpdate) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Status == nil
}

const taskColumns = "id, title, description, status, user_id, created_at"

// CreateTask inserts a new task owned by userID and fills in the assigned
// ID, defaulted status, and timestamp.
func (r *Repository) CreateTask(ctx context.Context, task *model.Task) error {
	query := `
		INSERT INTO tasks (title, description, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, status, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		task.Title,
		task.Description,
		task.UserID,
	).Scan(&task.ID, &task.Status, &task.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	return nil
}

// ListTasksByUserID retrieves all tasks owned by the given user, in
// creation order (ascending ID). Returns an empty slice when there are none.
func (r *Repository) ListTasksByUserID(ctx context.Context, userID int64) ([]*model.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]*model.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tasks: %w", err)
	}

	return tasks, nil
}

// GetTaskByID retrieves a task by ID, scoped to its owner.
// Returns ErrTaskNotFound if the task does not exist or belongs to another user.
func (r *Repository) GetTaskByID(ctx context.Context, id, userID int64) (*model.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	task, err := scanTask(r.pool.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	return task, nil
}

// UpdateTask applies a partial update to a task, scoped to its owner.
// The ownership check and the mutation run in a single transaction so a
// concurrent delete cannot slip between them. Returns the resulting row.
func (r *Repository) UpdateTask(ctx context.Context, id, userID int64, update TaskUpdate) (*model.Task, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	lockQuery := `
		SELECT ` + taskColumns + `
		FROM tasks
		WHERE id = $1 AND user_id = $2
		FOR UPDATE
	`

	task, err := scanTask(tx.QueryRow(ctx, lockQuery, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to lock task: %w", err)
	}

	if update.IsEmpty() {
		// A no-op update is not an error; hand back the row as-is.
		if err := tx.Commit(ctx); err != nil {
			return nil, fmt.Errorf("failed to commit transaction: %w", err)
		}
		return task, nil
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}

	updateQuery := `
		UPDATE tasks
		SET title = $3, description = $4, status = $5
		WHERE id = $1 AND user_id = $2
	`

	if _, err := tx.Exec(ctx, updateQuery, id, userID, task.Title, task.Description, task.Status); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return task, nil
}

// DeleteTask removes a task, scoped to its owner. The single statement is
// its own atomic ownership check; zero rows affected means not found.
func (r *Repository) DeleteTask(ctx context.Context, id, userID int64) error {
	query := `
		DELETE FROM tasks
		WHERE id = $1 AND user_id = $2
	`

	result, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTaskNotFound
	}

	return nil
}

// scanTask scans a single row into a Task model.
func scanTask(row pgx.Row) (*model.Task, error) {
	var task model.Task
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&task.Status,
		&task.UserID,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &task, nil
}
