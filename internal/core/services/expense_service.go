package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/teamtrackr/teampulse_app/internal/apperrors"
	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
	"github.com/teamtrackr/teampulse_app/internal/middleware"
)

type expenseService struct {
	expenseRepo portsrepo.ExpenseRepositoryFacade
	userRepo    portsrepo.UserReader
	notifier    portssvc.NotifierSvc
}

// NewExpenseService creates a new instance of expenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, userRepo portsrepo.UserReader, notifier portssvc.NotifierSvc) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo: expenseRepo,
		userRepo:    userRepo,
		notifier:    notifier,
	}
}

var _ portssvc.ExpenseSvcFacade = (*expenseService)(nil)

func (s *expenseService) SubmitExpense(ctx context.Context, principal domain.Principal, req dto.CreateExpenseRequest) (*domain.ExpenseClaim, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	date, err := time.Parse(dto.DateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be formatted as %s", apperrors.ErrValidation, dto.DateLayout)
	}

	submitter, err := s.userRepo.FindUserByID(ctx, principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve submitting user: %w", err)
	}

	expense := domain.ExpenseClaim{
		ExpenseID:      uuid.NewString(),
		EmployeeID:     principal.ID,
		EmployeeName:   submitter.Name,
		Category:       req.Category,
		Amount:         req.Amount,
		Date:           date,
		Description:    req.Description,
		ReceiptURL:     req.ReceiptURL,
		ApprovalStatus: domain.ApprovalPending,
		CreatedAt:      time.Now(),
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to save expense claim: %w", err)
	}
	return &expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, limit, offset int) ([]domain.ExpenseClaim, error) {
	return s.expenseRepo.FindExpenses(ctx, limit, offset)
}

func (s *expenseService) ApproveExpense(ctx context.Context, principal domain.Principal, expenseID string) (*domain.ExpenseClaim, error) {
	return s.setApprovalStatus(ctx, principal, expenseID, domain.ApprovalApproved)
}

func (s *expenseService) RejectExpense(ctx context.Context, principal domain.Principal, expenseID string) (*domain.ExpenseClaim, error) {
	return s.setApprovalStatus(ctx, principal, expenseID, domain.ApprovalRejected)
}

func (s *expenseService) setApprovalStatus(ctx context.Context, principal domain.Principal, expenseID string, status domain.ApprovalStatus) (*domain.ExpenseClaim, error) {
	if !principal.Role.CanApprove() {
		return nil, apperrors.ErrForbidden
	}

	expense, err := s.expenseRepo.SetApprovalStatus(ctx, expenseID, status, principal.ID)
	if err != nil {
		return nil, err
	}

	notificationType := domain.NotificationExpenseApproved
	if status == domain.ApprovalRejected {
		notificationType = domain.NotificationExpenseRejected
	}
	message := expenseDecisionMessage(expense.Category, expense.Amount, status)

	if err := s.notifier.Notify(ctx, expense.EmployeeID, notificationType, message); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to create expense notification",
			slog.String("expense_id", expenseID),
			slog.String("employee_id", expense.EmployeeID),
			slog.String("error", err.Error()),
		)
	}

	return expense, nil
}

// expenseDecisionMessage renders the employee-facing decision text, e.g.
// "Your travel expense claim of $120.50 has been approved".
func expenseDecisionMessage(category string, amount decimal.Decimal, status domain.ApprovalStatus) string {
	return fmt.Sprintf("Your %s expense claim of $%s has been %s", category, amount.StringFixed(2), status)
}
