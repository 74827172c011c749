package domain

import "time"

// LeaveType classifies a leave request.
type LeaveType string

const (
	LeaveVacation LeaveType = "vacation"
	LeaveSick     LeaveType = "sick"
	LeavePersonal LeaveType = "personal"
	LeaveOther    LeaveType = "other"
)

// LeaveRequest is an employee's request for time off.
// Invariant: StartDate <= EndDate, enforced before any row is written.
type LeaveRequest struct {
	LeaveID        string         `json:"leaveID"` // UUID
	EmployeeID     string         `json:"employeeID"`
	EmployeeName   string         `json:"employeeName"`
	LeaveType      LeaveType      `json:"leaveType"`
	StartDate      time.Time      `json:"startDate"`
	EndDate        time.Time      `json:"endDate"`
	Reason         string         `json:"reason"`
	ApprovalStatus ApprovalStatus `json:"approvalStatus"`
	ApprovedBy     *string        `json:"approvedBy,omitempty"`
	ApprovedByName *string        `json:"approvedByName,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}
