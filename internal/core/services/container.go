package services

import (
	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/platform/config"
)

// NewContainer creates a service container with properly initialized
// dependencies. The notification service is built first since the
// workflow services emit through it.
func NewContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Notification = NewNotificationService(repos.NotificationRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Leave = NewLeaveService(repos.LeaveRepo, repos.UserRepo, container.Notification)
	container.Expense = NewExpenseService(repos.ExpenseRepo, repos.UserRepo, container.Notification)
	container.Task = NewTaskService(repos.TaskRepo, repos.UserRepo, container.Notification)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
