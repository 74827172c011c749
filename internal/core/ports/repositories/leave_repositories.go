package repositories

import (
	"context"
	"time"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// LeaveReader defines read operations for leave requests.
type LeaveReader interface {
	// FindLeaveByID retrieves a single leave request.
	FindLeaveByID(ctx context.Context, leaveID string) (*domain.LeaveRequest, error)

	// FindLeaves retrieves all leave requests, newest first, with
	// employee and approver display names joined in.
	FindLeaves(ctx context.Context, limit, offset int) ([]domain.LeaveRequest, error)
}

// LeaveWriter defines write operations for leave requests.
type LeaveWriter interface {
	// SaveLeave persists a new leave request (always pending).
	SaveLeave(ctx context.Context, leave domain.LeaveRequest) error

	// SetApprovalStatus atomically sets approval_status, approved_by and
	// updated_at in a single statement and returns the updated row.
	// Returns apperrors.ErrNotFound when no row matches leaveID.
	SetApprovalStatus(ctx context.Context, leaveID string, status domain.ApprovalStatus, approverID string, now time.Time) (*domain.LeaveRequest, error)
}

// LeaveRepositoryFacade combines all leave repository interfaces.
type LeaveRepositoryFacade interface {
	LeaveReader
	LeaveWriter
}
