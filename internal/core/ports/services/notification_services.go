package services

import (
	"context"
	"time"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// NotifierSvc is the fire-and-forget emission port used by domain
// services. Callers log the returned error and discard it; a failed
// notification must never change the outcome of the operation that
// triggered it.
type NotifierSvc interface {
	// Notify inserts a notification row for userID.
	Notify(ctx context.Context, userID, notificationType, message string) error
}

// NotificationReaderSvc defines read operations for notifications.
type NotificationReaderSvc interface {
	// ListNotifications returns the caller's most recent notifications,
	// newest first, capped at the delivery window (50).
	ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error)
}

// NotificationWriterSvc defines mutation operations for notifications.
type NotificationWriterSvc interface {
	// MarkRead flags a single notification as read, scoped to its owner.
	MarkRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error)

	// MarkAllRead flags every unread notification of the caller as read.
	MarkAllRead(ctx context.Context, userID string) error

	// PurgeOlderThan deletes notifications older than maxAge and reports
	// how many were removed. Maintenance only, never on the request path.
	PurgeOlderThan(ctx context.Context, maxAge time.Duration) (int64, error)
}

// NotificationSvcFacade combines all notification service interfaces.
type NotificationSvcFacade interface {
	NotifierSvc
	NotificationReaderSvc
	NotificationWriterSvc
}
