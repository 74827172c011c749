package repositories

import (
	"context"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense claims.
type ExpenseReader interface {
	// FindExpenseByID retrieves a single expense claim.
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseClaim, error)

	// FindExpenses retrieves all expense claims, newest first, with
	// employee and approver display names joined in.
	FindExpenses(ctx context.Context, limit, offset int) ([]domain.ExpenseClaim, error)
}

// ExpenseWriter defines write operations for expense claims.
type ExpenseWriter interface {
	// SaveExpense persists a new expense claim (always pending).
	SaveExpense(ctx context.Context, expense domain.ExpenseClaim) error

	// SetApprovalStatus atomically sets approval_status and approved_by
	// in a single statement and returns the updated row. Returns
	// apperrors.ErrNotFound when no row matches expenseID.
	SetApprovalStatus(ctx context.Context, expenseID string, status domain.ApprovalStatus, approverID string) (*domain.ExpenseClaim, error)
}

// ExpenseRepositoryFacade combines all expense repository interfaces.
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
