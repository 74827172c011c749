package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	leaveRepo := newPgxLeaveRepository(dbPool)
	expenseRepo := newPgxExpenseRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)
	taskRepo := newPgxTaskRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:         userRepo,
		LeaveRepo:        leaveRepo,
		ExpenseRepo:      expenseRepo,
		NotificationRepo: notificationRepo,
		TaskRepo:         taskRepo,
		ReportingRepo:    reportingRepo,
	}
}
