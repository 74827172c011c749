package services

import (
	"context"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates a new instance of reportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) GetDashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	return s.reportingRepo.GetDashboardMetrics(ctx)
}
