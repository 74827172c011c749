package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/teamtrackr/teampulse_app/internal/apperrors"
	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
	"github.com/teamtrackr/teampulse_app/internal/middleware"
)

type leaveService struct {
	leaveRepo portsrepo.LeaveRepositoryFacade
	userRepo  portsrepo.UserReader
	notifier  portssvc.NotifierSvc
}

// NewLeaveService creates a new instance of leaveService.
func NewLeaveService(leaveRepo portsrepo.LeaveRepositoryFacade, userRepo portsrepo.UserReader, notifier portssvc.NotifierSvc) portssvc.LeaveSvcFacade {
	return &leaveService{
		leaveRepo: leaveRepo,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

var _ portssvc.LeaveSvcFacade = (*leaveService)(nil)

func (s *leaveService) SubmitLeave(ctx context.Context, principal domain.Principal, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error) {
	start, err := time.Parse(dto.DateLayout, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be formatted as %s", apperrors.ErrValidation, dto.DateLayout)
	}
	end, err := time.Parse(dto.DateLayout, req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be formatted as %s", apperrors.ErrValidation, dto.DateLayout)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date must not be before start_date", apperrors.ErrValidation)
	}

	submitter, err := s.userRepo.FindUserByID(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve submitting user: %w", err)
	}

	now := time.Now()
	leave := domain.LeaveRequest{
		LeaveID:        uuid.NewString(),
		EmployeeID:     principal.ID,
		EmployeeName:   submitter.Name,
		LeaveType:      domain.LeaveType(req.LeaveType),
		StartDate:      start,
		EndDate:        end,
		Reason:         req.Reason,
		ApprovalStatus: domain.ApprovalPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.leaveRepo.SaveLeave(ctx, leave); err != nil {
		return nil, fmt.Errorf("failed to save leave request: %w", err)
	}
	return &leave, nil
}

func (s *leaveService) ListLeaves(ctx context.Context, limit, offset int) ([]domain.LeaveRequest, error) {
	return s.leaveRepo.FindLeaves(ctx, limit, offset)
}

func (s *leaveService) ApproveLeave(ctx context.Context, principal domain.Principal, leaveID string) (*domain.LeaveRequest, error) {
	return s.setApprovalStatus(ctx, principal, leaveID, domain.ApprovalApproved)
}

func (s *leaveService) RejectLeave(ctx context.Context, principal domain.Principal, leaveID string) (*domain.LeaveRequest, error) {
	return s.setApprovalStatus(ctx, principal, leaveID, domain.ApprovalRejected)
}

// setApprovalStatus runs the shared approve/reject path: role gate,
// single-statement status write, then best-effort notification. The
// notification happens only after the write succeeded, and its failure
// is logged and discarded.
func (s *leaveService) setApprovalStatus(ctx context.Context, principal domain.Principal, leaveID string, status domain.ApprovalStatus) (*domain.LeaveRequest, error) {
	if !principal.Role.CanApprove() {
		return nil, apperrors.ErrForbidden
	}

	leave, err := s.leaveRepo.SetApprovalStatus(ctx, leaveID, status, principal.ID, time.Now())
	if err != nil {
		return nil, err
	}

	message := "Your leave request has been approved"
	notificationType := domain.NotificationLeaveApproved
	if status == domain.ApprovalRejected {
		message = "Your leave request has been rejected"
		notificationType = domain.NotificationLeaveRejected
	}

	if err := s.notifier.Notify(ctx, leave.EmployeeID, notificationType, message); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to create leave notification",
			slog.String("leave_id", leaveID),
			slog.String("employee_id", leave.EmployeeID),
			slog.String("error", err.Error()),
		)
	}

	return leave, nil
}
