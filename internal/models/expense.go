package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseClaim is the database row for an expense claim.
type ExpenseClaim struct {
	ExpenseID      string          `db:"expense_id"`
	EmployeeID     string          `db:"employee_id"`
	EmployeeName   *string         `db:"employee_name"` // joined from users on read
	Category       string          `db:"category"`
	Amount         decimal.Decimal `db:"amount"`
	Date           time.Time       `db:"date"`
	Description    string          `db:"description"`
	ReceiptURL     *string         `db:"receipt_url"`
	ApprovalStatus string          `db:"approval_status"`
	ApprovedBy     *string         `db:"approved_by"`
	ApprovedByName *string         `db:"approved_by_name"`
	CreatedAt      time.Time       `db:"created_at"`
}
