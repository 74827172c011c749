package services

import (
	"context"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	"github.com/teamtrackr/teampulse_app/internal/dto"
)

// LeaveSvcFacade exposes the leave request workflow: submission, listing
// and the role-gated pending→approved/rejected transition.
type LeaveSvcFacade interface {
	// SubmitLeave validates the request (required fields, start<=end)
	// and persists it with approval_status=pending. Never auto-approves.
	SubmitLeave(ctx context.Context, principal domain.Principal, req dto.CreateLeaveRequest) (*domain.LeaveRequest, error)

	// ListLeaves returns leave requests newest first with display names.
	ListLeaves(ctx context.Context, limit, offset int) ([]domain.LeaveRequest, error)

	// ApproveLeave transitions a leave to approved and notifies the
	// owning employee. Fails with apperrors.ErrForbidden unless the
	// principal can approve, apperrors.ErrNotFound for unknown ids.
	ApproveLeave(ctx context.Context, principal domain.Principal, leaveID string) (*domain.LeaveRequest, error)

	// RejectLeave is symmetric to ApproveLeave with status rejected.
	RejectLeave(ctx context.Context, principal domain.Principal, leaveID string) (*domain.LeaveRequest, error)
}
