package domain

// ApprovalStatus is the workflow state of a leave request or expense
// claim. Items are created pending; approved and rejected are terminal
// in the workflow, though a later approve/reject call still overwrites
// (last writer wins, see LeaveRequest/ExpenseClaim repositories).
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)
