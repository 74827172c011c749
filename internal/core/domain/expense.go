package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseClaim is an employee's reimbursement claim.
// Invariant: Amount > 0, enforced before any row is written.
type ExpenseClaim struct {
	ExpenseID      string          `json:"expenseID"` // UUID
	EmployeeID     string          `json:"employeeID"`
	EmployeeName   string          `json:"employeeName,omitempty"`
	Category       string          `json:"category"`
	Amount         decimal.Decimal `json:"amount"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	ReceiptURL     *string         `json:"receiptURL,omitempty"`
	ApprovalStatus ApprovalStatus  `json:"approvalStatus"`
	ApprovedBy     *string         `json:"approvedBy,omitempty"`
	ApprovedByName *string         `json:"approvedByName,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}
