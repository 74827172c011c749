package models

import "time"

// LeaveRequest is the database row for a leave request. EmployeeName is
// denormalized onto the row at submission time; ApprovedByName is
// joined from users on read.
type LeaveRequest struct {
	LeaveID        string    `db:"leave_id"`
	EmployeeID     string    `db:"employee_id"`
	EmployeeName   string    `db:"employee_name"`
	LeaveType      string    `db:"leave_type"`
	StartDate      time.Time `db:"start_date"`
	EndDate        time.Time `db:"end_date"`
	Reason         string    `db:"reason"`
	ApprovalStatus string    `db:"approval_status"`
	ApprovedBy     *string   `db:"approved_by"`
	ApprovedByName *string   `db:"approved_by_name"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}
