package repositories

import (
	"context"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// TaskUpdate carries the optional fields of a task update. Nil fields
// are left untouched; the repository builds the SET list from the
// non-nil ones against an allow-listed column set.
type TaskUpdate struct {
	Description    *string
	AssignedTo     *string
	Status         *domain.TaskStatus
	Priority       *domain.TaskPriority
	DueDate        *string // ISO date, passed through to the date column
	EstimatedHours *float64
	ActualHours    *float64
}

// TaskReader defines read operations for tasks.
type TaskReader interface {
	// FindTaskByID retrieves a single task.
	FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error)

	// FindTasks retrieves all tasks, newest first, with assignee display
	// names joined in.
	FindTasks(ctx context.Context, limit, offset int) ([]domain.Task, error)
}

// TaskWriter defines write operations for tasks.
type TaskWriter interface {
	// SaveTask persists a new task.
	SaveTask(ctx context.Context, task domain.Task) error

	// UpdateTask applies the non-nil fields of upd and refreshes
	// last_updated_date, returning the updated row. Returns
	// apperrors.ErrNotFound when no row matches taskID.
	UpdateTask(ctx context.Context, taskID string, upd TaskUpdate) (*domain.Task, error)

	// DeleteTask removes a task. Returns apperrors.ErrNotFound when no
	// row matches taskID.
	DeleteTask(ctx context.Context, taskID string) error
}

// TaskRepositoryFacade combines all task repository interfaces.
type TaskRepositoryFacade interface {
	TaskReader
	TaskWriter
}
