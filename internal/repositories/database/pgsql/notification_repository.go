package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teamtrackr/teampulse_app/internal/apperrors"
	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
	"github.com/teamtrackr/teampulse_app/internal/models"
)

type PgxNotificationRepository struct {
	db *pgxpool.Pool
}

func newPgxNotificationRepository(db *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{db: db}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func toDomainNotification(m models.Notification) domain.Notification {
	return domain.Notification{
		NotificationID: m.NotificationID,
		UserID:         m.UserID,
		Type:           m.Type,
		Message:        m.Message,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, n domain.Notification) error {
	query := `
        INSERT INTO notifications (notification_id, user_id, type, message, read, created_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.db.Exec(ctx, query,
		n.NotificationID,
		n.UserID,
		n.Type,
		n.Message,
		n.Read,
		n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save notification: %w", err)
	}
	return nil
}

func (r *PgxNotificationRepository) FindNotificationsByUser(ctx context.Context, userID string, limit int) ([]domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
        SELECT notification_id, user_id, type, message, read, created_at
        FROM notifications
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2;
    `
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := []domain.Notification{}
	for rows.Next() {
		var m models.Notification
		if err := rows.Scan(&m.NotificationID, &m.UserID, &m.Type, &m.Message, &m.Read, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, toDomainNotification(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating notification rows: %w", err)
	}
	return notifications, nil
}

// MarkRead is owner-scoped: the WHERE clause binds both id and user_id,
// so a foreign notification behaves exactly like a missing one.
func (r *PgxNotificationRepository) MarkRead(ctx context.Context, notificationID, userID string) (*domain.Notification, error) {
	query := `
        UPDATE notifications
        SET read = true
        WHERE notification_id = $1 AND user_id = $2
        RETURNING notification_id, user_id, type, message, read, created_at;
    `
	var m models.Notification
	err := r.db.QueryRow(ctx, query, notificationID, userID).Scan(
		&m.NotificationID, &m.UserID, &m.Type, &m.Message, &m.Read, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	n := toDomainNotification(m)
	return &n, nil
}

func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	query := `
        UPDATE notifications
        SET read = true
        WHERE user_id = $1 AND read = false;
    `
	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return nil
}

func (r *PgxNotificationRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `
        DELETE FROM notifications
        WHERE created_at < $1;
    `
	tag, err := r.db.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge notifications: %w", err)
	}
	return tag.RowsAffected(), nil
}
