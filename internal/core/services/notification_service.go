package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
)

// deliveryWindow caps how many notifications a single fetch returns.
// Older unread rows are not paged; they age out via the purge.
const deliveryWindow = 50

type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new instance of notificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// Notify inserts a notification row for userID. Each call creates a
// fresh row: emission is not idempotent, so a transition decided twice
// yields two notifications.
func (s *notificationService) Notify(ctx context.Context, userID, notificationType, message string) error {
	n := domain.Notification{
		NotificationID: uuid.NewString(),
		UserID:         userID,
		Type:           notificationType,
		Message:        message,
		Read:           false,
		CreatedAt:      time.Now(),
	}
	if err := s.notificationRepo.SaveNotification(ctx, n); err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (s *notificationService) ListNotifications(ctx context.Context, userID string) ([]domain.Notification, error) {
	return s.notificationRepo.FindNotificationsByUser(ctx, userID, deliveryWindow)
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	return s.notificationRepo.MarkRead(ctx, notificationID, userID)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// PurgeOlderThan deletes notifications whose created_at is older than
// maxAge, read or not.
func (s *notificationService) PurgeOlderThan(ctx context.Context, maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	return s.notificationRepo.DeleteOlderThan(ctx, cutoff)
}
