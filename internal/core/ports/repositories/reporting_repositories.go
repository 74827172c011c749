package repositories

import (
	"context"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// ReportingRepository aggregates the dashboard metric counts.
type ReportingRepository interface {
	// GetDashboardMetrics computes the headline dashboard counts.
	GetDashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error)
}
