package services

import (
	"context"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// ReportingSvcFacade computes dashboard aggregates.
type ReportingSvcFacade interface {
	// GetDashboardMetrics returns the headline counts for the dashboard.
	GetDashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error)
}
