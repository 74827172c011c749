package repositories

import (
	"context"
	"time"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// NotificationReader defines read operations for notifications.
type NotificationReader interface {
	// FindNotificationsByUser retrieves up to limit notifications for a
	// user, newest first.
	FindNotificationsByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error)
}

// NotificationWriter defines write operations for notifications.
type NotificationWriter interface {
	// SaveNotification persists a new notification row.
	SaveNotification(ctx context.Context, n domain.Notification) error

	// MarkRead sets read=true on a notification owned by userID.
	// Returns apperrors.ErrNotFound when the row is absent or owned by
	// someone else; the two cases are indistinguishable to the caller.
	MarkRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error)

	// MarkAllRead sets read=true on every unread notification of a user.
	MarkAllRead(ctx context.Context, userID string) error

	// DeleteOlderThan removes notifications created before cutoff and
	// reports how many rows were purged.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// NotificationRepositoryFacade combines all notification repository interfaces.
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
