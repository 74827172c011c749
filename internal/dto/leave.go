package dto

import (
	"time"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// DateLayout is the wire format for calendar dates (no time component).
const DateLayout = "2006-01-02"

// CreateLeaveRequest defines the data needed to submit a leave request.
// Dates travel as ISO calendar dates; the service parses and checks the
// range before anything is persisted.
type CreateLeaveRequest struct {
	LeaveType string `json:"leave_type" binding:"required,oneof=vacation sick personal other"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
	Reason    string `json:"reason"`
}

// LeaveResponse defines the data returned for a leave request.
type LeaveResponse struct {
	LeaveID        string                `json:"leaveID"`
	EmployeeID     string                `json:"employeeID"`
	EmployeeName   string                `json:"employeeName"`
	LeaveType      domain.LeaveType      `json:"leaveType"`
	StartDate      string                `json:"startDate"`
	EndDate        string                `json:"endDate"`
	Reason         string                `json:"reason"`
	ApprovalStatus domain.ApprovalStatus `json:"approvalStatus"`
	ApprovedBy     *string               `json:"approvedBy,omitempty"`
	ApprovedByName *string               `json:"approvedByName,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	UpdatedAt      time.Time             `json:"updatedAt"`
}

// ListLeavesParams defines query parameters for listing leave requests.
type ListLeavesParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}

// ToLeaveResponse converts a domain.LeaveRequest to LeaveResponse DTO.
func ToLeaveResponse(l *domain.LeaveRequest) LeaveResponse {
	return LeaveResponse{
		LeaveID:        l.LeaveID,
		EmployeeID:     l.EmployeeID,
		EmployeeName:   l.EmployeeName,
		LeaveType:      l.LeaveType,
		StartDate:      l.StartDate.Format(DateLayout),
		EndDate:        l.EndDate.Format(DateLayout),
		Reason:         l.Reason,
		ApprovalStatus: l.ApprovalStatus,
		ApprovedBy:     l.ApprovedBy,
		ApprovedByName: l.ApprovedByName,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

// ToListLeaveResponse converts a slice of domain.LeaveRequest to DTOs.
func ToListLeaveResponse(leaves []domain.LeaveRequest) []LeaveResponse {
	res := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		res[i] = ToLeaveResponse(&l)
	}
	return res
}
