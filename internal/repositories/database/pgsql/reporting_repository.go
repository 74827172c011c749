package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
)

// reportingRepository implements the ReportingRepository interface.
type reportingRepository struct {
	BaseRepository
}

func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// GetDashboardMetrics computes the headline counts in one round trip.
func (r *reportingRepository) GetDashboardMetrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM tasks WHERE status IN ('backlog', 'in_progress', 'in_review')) AS active_tasks,
			(SELECT COUNT(*) FROM tasks WHERE status = 'completed' AND last_updated_date >= NOW() - INTERVAL '7 days') AS tasks_completed,
			(SELECT COUNT(*) FROM leaves WHERE approval_status = 'pending')
				+ (SELECT COUNT(*) FROM expenses WHERE approval_status = 'pending') AS pending_approvals,
			(SELECT COUNT(*) FROM users) AS total_members,
			(SELECT COUNT(*) FROM users WHERE user_id NOT IN (
				SELECT DISTINCT employee_id FROM leaves
				WHERE approval_status = 'approved'
					AND start_date <= CURRENT_DATE
					AND end_date >= CURRENT_DATE
			)) AS available_members
	`

	var m domain.DashboardMetrics
	err := r.Pool.QueryRow(ctx, query).Scan(
		&m.ActiveTasks,
		&m.TasksCompleted,
		&m.PendingApprovals,
		&m.TotalMembers,
		&m.AvailableMembers,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying dashboard metrics: %w", err)
	}
	return &m, nil
}
