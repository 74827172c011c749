package models

import "time"

// Task is the database row for a tracked task.
type Task struct {
	TaskID         string     `db:"task_id"`
	Description    string     `db:"task_description"`
	AssignedTo     *string    `db:"assigned_to"`
	AssignedToName *string    `db:"assigned_to_name"` // joined from users on read
	Status         string     `db:"status"`
	Priority       string     `db:"priority"`
	DueDate        *time.Time `db:"due_date"`
	EstimatedHours *float64   `db:"estimated_hours"`
	ActualHours    *float64   `db:"actual_hours"`
	CreatedAt      time.Time  `db:"creation_date"`
	LastUpdatedAt  time.Time  `db:"last_updated_date"`
}
