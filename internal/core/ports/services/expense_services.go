package services

import (
	"context"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	"github.com/teamtrackr/teampulse_app/internal/dto"
)

// ExpenseSvcFacade exposes the expense claim workflow, mirroring
// LeaveSvcFacade minus the date-range validation.
type ExpenseSvcFacade interface {
	// SubmitExpense validates the request (required fields, amount>0)
	// and persists it with approval_status=pending.
	SubmitExpense(ctx context.Context, principal domain.Principal, req dto.CreateExpenseRequest) (*domain.ExpenseClaim, error)

	// ListExpenses returns expense claims newest first with display names.
	ListExpenses(ctx context.Context, limit, offset int) ([]domain.ExpenseClaim, error)

	// ApproveExpense transitions an expense to approved and notifies the
	// owning employee with a category/amount message.
	ApproveExpense(ctx context.Context, principal domain.Principal, expenseID string) (*domain.ExpenseClaim, error)

	// RejectExpense is symmetric to ApproveExpense with status rejected.
	RejectExpense(ctx context.Context, principal domain.Principal, expenseID string) (*domain.ExpenseClaim, error)
}
