package dto

import (
	"time"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// CreateTaskRequest defines the data needed to create a task. Status
// and priority fall back to backlog/medium when omitted.
type CreateTaskRequest struct {
	Description    string   `json:"task_description" binding:"required"`
	AssignedTo     *string  `json:"assigned_to"`
	Status         *string  `json:"status" binding:"omitempty,oneof=backlog in_progress in_review completed"`
	Priority       *string  `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	DueDate        *string  `json:"due_date"`
	EstimatedHours *float64 `json:"estimated_hours" binding:"omitempty,gt=0,lte=1000"`
}

// UpdateTaskRequest defines the data allowed for updating a task.
// Pointers distinguish omitted fields from zero values.
type UpdateTaskRequest struct {
	Description    *string  `json:"task_description"`
	AssignedTo     *string  `json:"assigned_to"`
	Status         *string  `json:"status" binding:"omitempty,oneof=backlog in_progress in_review completed"`
	Priority       *string  `json:"priority" binding:"omitempty,oneof=low medium high critical"`
	DueDate        *string  `json:"due_date"`
	EstimatedHours *float64 `json:"estimated_hours" binding:"omitempty,gt=0,lte=1000"`
	ActualHours    *float64 `json:"actual_hours" binding:"omitempty,gt=0,lte=10000"`
}

// TaskResponse defines the data returned for a task.
type TaskResponse struct {
	TaskID         string              `json:"taskID"`
	Description    string              `json:"description"`
	AssignedTo     *string             `json:"assignedTo,omitempty"`
	AssignedToName *string             `json:"assignedToName,omitempty"`
	Status         domain.TaskStatus   `json:"status"`
	Priority       domain.TaskPriority `json:"priority"`
	DueDate        *string             `json:"dueDate,omitempty"`
	EstimatedHours *float64            `json:"estimatedHours,omitempty"`
	ActualHours    *float64            `json:"actualHours,omitempty"`
	CreatedAt      time.Time           `json:"createdAt"`
	LastUpdatedAt  time.Time           `json:"lastUpdatedAt"`
}

// ListTasksParams defines query parameters for listing tasks.
type ListTasksParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}

// ToTaskResponse converts a domain.Task to TaskResponse DTO.
func ToTaskResponse(t *domain.Task) TaskResponse {
	var due *string
	if t.DueDate != nil {
		d := t.DueDate.Format(DateLayout)
		due = &d
	}
	return TaskResponse{
		TaskID:         t.TaskID,
		Description:    t.Description,
		AssignedTo:     t.AssignedTo,
		AssignedToName: t.AssignedToName,
		Status:         t.Status,
		Priority:       t.Priority,
		DueDate:        due,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
		CreatedAt:      t.CreatedAt,
		LastUpdatedAt:  t.LastUpdatedAt,
	}
}

// ToListTaskResponse converts a slice of domain.Task to DTOs.
func ToListTaskResponse(tasks []domain.Task) []TaskResponse {
	res := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		res[i] = ToTaskResponse(&t)
	}
	return res
}
