package models

import "time"

// Notification is the database row for a user notification.
type Notification struct {
	NotificationID string    `db:"notification_id"`
	UserID         string    `db:"user_id"`
	Type           string    `db:"type"`
	Message        string    `db:"message"`
	Read           bool      `db:"read"`
	CreatedAt      time.Time `db:"created_at"`
}
