package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teamtrackr/teampulse_app/internal/apperrors"
	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
	"github.com/teamtrackr/teampulse_app/internal/middleware"
)

type taskService struct {
	taskRepo portsrepo.TaskRepositoryFacade
	userRepo portsrepo.UserReader
	notifier portssvc.NotifierSvc
}

// NewTaskService creates a new instance of taskService.
func NewTaskService(taskRepo portsrepo.TaskRepositoryFacade, userRepo portsrepo.UserReader, notifier portssvc.NotifierSvc) portssvc.TaskSvcFacade {
	return &taskService{
		taskRepo: taskRepo,
		userRepo: userRepo,
		notifier: notifier,
	}
}

var _ portssvc.TaskSvcFacade = (*taskService)(nil)

func (s *taskService) CreateTask(ctx context.Context, principal domain.Principal, req dto.CreateTaskRequest) (*domain.Task, error) {
	var due *time.Time
	if req.DueDate != nil && *req.DueDate != "" {
		d, err := time.Parse(dto.DateLayout, *req.DueDate)
		if err != nil {
			return nil, fmt.Errorf("%w: due_date must be formatted as %s", apperrors.ErrValidation, dto.DateLayout)
		}
		due = &d
	}

	status := domain.TaskBacklog
	if req.Status != nil {
		status = domain.TaskStatus(*req.Status)
	}
	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	var assignedTo *string
	if req.AssignedTo != nil && *req.AssignedTo != "" {
		assignee, err := s.userRepo.FindUserByID(ctx, *req.AssignedTo)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve assignee: %w", err)
		}
		assignedTo = &assignee.UserID
	}

	now := time.Now()
	task := domain.Task{
		TaskID:         uuid.NewString(),
		Description:    req.Description,
		AssignedTo:     assignedTo,
		Status:         status,
		Priority:       priority,
		DueDate:        due,
		EstimatedHours: req.EstimatedHours,
		CreatedAt:      now,
		LastUpdatedAt:  now,
	}

	if err := s.taskRepo.SaveTask(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}

	// Self-assigned tasks skip the notification.
	if assignedTo != nil && *assignedTo != principal.ID {
		s.notifyAssignment(ctx, task.TaskID, *assignedTo, task.Description)
	}

	return &task, nil
}

func (s *taskService) ListTasks(ctx context.Context, limit, offset int) ([]domain.Task, error) {
	return s.taskRepo.FindTasks(ctx, limit, offset)
}

func (s *taskService) UpdateTask(ctx context.Context, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	if req.DueDate != nil && *req.DueDate != "" {
		if _, err := time.Parse(dto.DateLayout, *req.DueDate); err != nil {
			return nil, fmt.Errorf("%w: due_date must be formatted as %s", apperrors.ErrValidation, dto.DateLayout)
		}
	}

	// Resolve the assignee before touching the row so a bad id surfaces
	// as 400/404 instead of a foreign key failure.
	if req.AssignedTo != nil {
		if *req.AssignedTo == "" {
			return nil, fmt.Errorf("%w: assigned_to cannot be empty", apperrors.ErrValidation)
		}
		if _, err := s.userRepo.FindUserByID(ctx, *req.AssignedTo); err != nil {
			return nil, fmt.Errorf("failed to resolve assignee: %w", err)
		}
	}

	before, err := s.taskRepo.FindTaskByID(ctx, taskID)
	if err != nil {
		return nil, err
	}

	upd := portsrepo.TaskUpdate{
		Description:    req.Description,
		AssignedTo:     req.AssignedTo,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		ActualHours:    req.ActualHours,
	}
	if req.Status != nil {
		st := domain.TaskStatus(*req.Status)
		upd.Status = &st
	}
	if req.Priority != nil {
		pr := domain.TaskPriority(*req.Priority)
		upd.Priority = &pr
	}

	task, err := s.taskRepo.UpdateTask(ctx, taskID, upd)
	if err != nil {
		return nil, err
	}

	// Notify on reassignment to a different user.
	if task.AssignedTo != nil &&
		(before.AssignedTo == nil || *before.AssignedTo != *task.AssignedTo) {
		s.notifyAssignment(ctx, task.TaskID, *task.AssignedTo, task.Description)
	}

	return task, nil
}

func (s *taskService) DeleteTask(ctx context.Context, taskID string) error {
	return s.taskRepo.DeleteTask(ctx, taskID)
}

// notifyAssignment emits the best-effort assignment notification.
func (s *taskService) notifyAssignment(ctx context.Context, taskID, userID, description string) {
	message := fmt.Sprintf("New task assigned: %s", description)
	if err := s.notifier.Notify(ctx, userID, domain.NotificationTaskAssigned, message); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to create task assignment notification",
			slog.String("task_id", taskID),
			slog.String("assignee_id", userID),
			slog.String("error", err.Error()),
		)
	}
}
