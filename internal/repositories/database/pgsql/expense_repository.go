package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teamtrackr/teampulse_app/internal/apperrors"
	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
	"github.com/teamtrackr/teampulse_app/internal/models"
)

type PgxExpenseRepository struct {
	db *pgxpool.Pool
}

func newPgxExpenseRepository(db *pgxpool.Pool) portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{db: db}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func toDomainExpense(m models.ExpenseClaim) domain.ExpenseClaim {
	employeeName := ""
	if m.EmployeeName != nil {
		employeeName = *m.EmployeeName
	}
	return domain.ExpenseClaim{
		ExpenseID:      m.ExpenseID,
		EmployeeID:     m.EmployeeID,
		EmployeeName:   employeeName,
		Category:       m.Category,
		Amount:         m.Amount,
		Date:           m.Date,
		Description:    m.Description,
		ReceiptURL:     m.ReceiptURL,
		ApprovalStatus: domain.ApprovalStatus(m.ApprovalStatus),
		ApprovedBy:     m.ApprovedBy,
		ApprovedByName: m.ApprovedByName,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.ExpenseClaim) error {
	query := `
        INSERT INTO expenses (expense_id, employee_id, category, amount, date, description, receipt_url, approval_status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		expense.ExpenseID,
		expense.EmployeeID,
		expense.Category,
		expense.Amount,
		expense.Date,
		expense.Description,
		expense.ReceiptURL,
		string(expense.ApprovalStatus),
		expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save expense claim: %w", err)
	}
	return nil
}

func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID string) (*domain.ExpenseClaim, error) {
	query := `
		SELECT e.expense_id, e.employee_id, u.name AS employee_name, e.category, e.amount, e.date,
		       e.description, e.receipt_url, e.approval_status, e.approved_by, a.name AS approved_by_name,
		       e.created_at
		FROM expenses e
		LEFT JOIN users u ON e.employee_id = u.user_id
		LEFT JOIN users a ON e.approved_by = a.user_id
		WHERE e.expense_id = $1;
	`
	var m models.ExpenseClaim
	err := r.db.QueryRow(ctx, query, expenseID).Scan(
		&m.ExpenseID, &m.EmployeeID, &m.EmployeeName, &m.Category, &m.Amount, &m.Date,
		&m.Description, &m.ReceiptURL, &m.ApprovalStatus, &m.ApprovedBy, &m.ApprovedByName,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find expense %s: %w", expenseID, err)
	}
	e := toDomainExpense(m)
	return &e, nil
}

func (r *PgxExpenseRepository) FindExpenses(ctx context.Context, limit, offset int) ([]domain.ExpenseClaim, error) {
	limit, offset = normalizeLimitOffset(limit, offset, 100)

	query := `
        SELECT e.expense_id, e.employee_id, u.name AS employee_name, e.category, e.amount, e.date,
               e.description, e.receipt_url, e.approval_status, e.approved_by, a.name AS approved_by_name,
               e.created_at
        FROM expenses e
        LEFT JOIN users u ON e.employee_id = u.user_id
        LEFT JOIN users a ON e.approved_by = a.user_id
        ORDER BY e.created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := []domain.ExpenseClaim{}
	for rows.Next() {
		var m models.ExpenseClaim
		if err := rows.Scan(
			&m.ExpenseID, &m.EmployeeID, &m.EmployeeName, &m.Category, &m.Amount, &m.Date,
			&m.Description, &m.ReceiptURL, &m.ApprovalStatus, &m.ApprovedBy, &m.ApprovedByName,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, toDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating expense rows: %w", err)
	}
	return expenses, nil
}

// SetApprovalStatus mirrors the leave variant: one atomic UPDATE with
// no pending-state guard, last writer wins. Expenses carry no
// updated_at column, so only status and approver change.
func (r *PgxExpenseRepository) SetApprovalStatus(ctx context.Context, expenseID string, status domain.ApprovalStatus, approverID string) (*domain.ExpenseClaim, error) {
	query := `
        UPDATE expenses
        SET approval_status = $1,
            approved_by = $2
        WHERE expense_id = $3
        RETURNING expense_id, employee_id, category, amount, date, description, receipt_url,
                  approval_status, approved_by, created_at;
    `
	var m models.ExpenseClaim
	err := r.db.QueryRow(ctx, query, string(status), approverID, expenseID).Scan(
		&m.ExpenseID, &m.EmployeeID, &m.Category, &m.Amount, &m.Date, &m.Description,
		&m.ReceiptURL, &m.ApprovalStatus, &m.ApprovedBy,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to set approval status on expense %s: %w", expenseID, err)
	}
	e := toDomainExpense(m)
	return &e, nil
}
