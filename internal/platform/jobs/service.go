// Package jobs runs background maintenance for the dashboard. The only
// job today is the notification retention purge; the ticker loop is
// generic enough to grow more.
package jobs

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/platform/config"
)

type Service struct {
	notifications portssvc.NotificationWriterSvc
	cfg           *config.Config
	logger        *slog.Logger
}

func New(notifications portssvc.NotificationWriterSvc, cfg *config.Config, logger *slog.Logger) *Service {
	return &Service{
		notifications: notifications,
		cfg:           cfg,
		logger:        logger,
	}
}

// Start launches the schedulers. They stop when ctx is cancelled.
func (s *Service) Start(ctx context.Context) {
	if s.cfg.NotificationPurgeInterval > 0 {
		go s.scheduleNotificationPurge(ctx, s.cfg.NotificationPurgeInterval)
	}
}

func (s *Service) scheduleNotificationPurge(ctx context.Context, interval time.Duration) {
	// Run once on startup so a long-stopped deployment catches up
	// without waiting a full interval.
	s.runNotificationPurge(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runNotificationPurge(ctx)
		}
	}
}

func (s *Service) runNotificationPurge(ctx context.Context) {
	maxAge := time.Duration(s.cfg.NotificationRetentionDays) * 24 * time.Hour
	removed, err := s.notifications.PurgeOlderThan(ctx, maxAge)
	if err != nil {
		s.logger.Warn("notification purge failed", slog.String("error", err.Error()))
		return
	}
	if removed > 0 {
		s.logger.Info("notification purge completed",
			slog.Int64("removed", removed),
			slog.Int("retention_days", s.cfg.NotificationRetentionDays),
		)
	}
}
