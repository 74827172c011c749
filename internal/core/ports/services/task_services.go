package services

import (
	"context"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	"github.com/teamtrackr/teampulse_app/internal/dto"
)

// TaskSvcFacade exposes task tracking. Creating or reassigning a task
// with an assignee notifies that user (best effort).
type TaskSvcFacade interface {
	// CreateTask validates and persists a new task.
	CreateTask(ctx context.Context, principal domain.Principal, req dto.CreateTaskRequest) (*domain.Task, error)

	// ListTasks returns tasks newest first with assignee display names.
	ListTasks(ctx context.Context, limit, offset int) ([]domain.Task, error)

	// UpdateTask applies the provided fields to a task.
	UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error)

	// DeleteTask removes a task.
	DeleteTask(ctx context.Context, taskID string) error
}
