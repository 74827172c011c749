package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// CreateExpenseRequest defines the data needed to submit an expense
// claim. Amount must be strictly positive; the service enforces that
// (the binding layer cannot compare decimals).
type CreateExpenseRequest struct {
	Category    string          `json:"category" binding:"required"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Description string          `json:"description" binding:"required"`
	ReceiptURL  *string         `json:"receipt_url"`
}

// ExpenseResponse defines the data returned for an expense claim.
type ExpenseResponse struct {
	ExpenseID      string                `json:"expenseID"`
	EmployeeID     string                `json:"employeeID"`
	EmployeeName   string                `json:"employeeName,omitempty"`
	Category       string                `json:"category"`
	Amount         decimal.Decimal       `json:"amount"`
	Date           string                `json:"date"`
	Description    string                `json:"description"`
	ReceiptURL     *string               `json:"receiptURL,omitempty"`
	ApprovalStatus domain.ApprovalStatus `json:"approvalStatus"`
	ApprovedBy     *string               `json:"approvedBy,omitempty"`
	ApprovedByName *string               `json:"approvedByName,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Limit  int `form:"limit,default=100"`
	Offset int `form:"offset,default=0"`
}

// ToExpenseResponse converts a domain.ExpenseClaim to ExpenseResponse DTO.
func ToExpenseResponse(e *domain.ExpenseClaim) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:      e.ExpenseID,
		EmployeeID:     e.EmployeeID,
		EmployeeName:   e.EmployeeName,
		Category:       e.Category,
		Amount:         e.Amount,
		Date:           e.Date.Format(DateLayout),
		Description:    e.Description,
		ReceiptURL:     e.ReceiptURL,
		ApprovalStatus: e.ApprovalStatus,
		ApprovedBy:     e.ApprovedBy,
		ApprovedByName: e.ApprovedByName,
		CreatedAt:      e.CreatedAt,
	}
}

// ToListExpenseResponse converts a slice of domain.ExpenseClaim to DTOs.
func ToListExpenseResponse(expenses []domain.ExpenseClaim) []ExpenseResponse {
	res := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		res[i] = ToExpenseResponse(&e)
	}
	return res
}
