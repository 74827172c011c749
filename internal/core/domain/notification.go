package domain

import "time"

// Notification types emitted by domain transitions.
const (
	NotificationLeaveApproved   = "leave_approved"
	NotificationLeaveRejected   = "leave_rejected"
	NotificationExpenseApproved = "expense_approved"
	NotificationExpenseRejected = "expense_rejected"
	NotificationTaskAssigned    = "task_assigned"
)

// Notification is a per-user message created as a side effect of a
// domain transition. Only the Read flag is ever updated; rows die via
// explicit mark-read plus age-based purge.
type Notification struct {
	NotificationID string    `json:"notificationID"` // UUID
	UserID         string    `json:"userID"`
	Type           string    `json:"type"`
	Message        string    `json:"message"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"createdAt"`
}
