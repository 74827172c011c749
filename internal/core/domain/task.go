package domain

import "time"

// TaskStatus is the kanban column a task sits in.
type TaskStatus string

const (
	TaskBacklog    TaskStatus = "backlog"
	TaskInProgress TaskStatus = "in_progress"
	TaskInReview   TaskStatus = "in_review"
	TaskCompleted  TaskStatus = "completed"
)

// TaskPriority orders tasks within a column.
type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

// Task is a unit of tracked work, optionally assigned to a user.
type Task struct {
	TaskID         string       `json:"taskID"` // UUID
	Description    string       `json:"description"`
	AssignedTo     *string      `json:"assignedTo,omitempty"`
	AssignedToName *string      `json:"assignedToName,omitempty"`
	Status         TaskStatus   `json:"status"`
	Priority       TaskPriority `json:"priority"`
	DueDate        *time.Time   `json:"dueDate,omitempty"`
	EstimatedHours *float64     `json:"estimatedHours,omitempty"`
	ActualHours    *float64     `json:"actualHours,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	LastUpdatedAt  time.Time    `json:"lastUpdatedAt"`
}
