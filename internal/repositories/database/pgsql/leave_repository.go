package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teamtrackr/teampulse_app/internal/apperrors"
	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
	"github.com/teamtrackr/teampulse_app/internal/models"
)

type PgxLeaveRepository struct {
	db *pgxpool.Pool
}

func newPgxLeaveRepository(db *pgxpool.Pool) portsrepo.LeaveRepositoryFacade {
	return &PgxLeaveRepository{db: db}
}

var _ portsrepo.LeaveRepositoryFacade = (*PgxLeaveRepository)(nil)

func toDomainLeave(m models.LeaveRequest) domain.LeaveRequest {
	return domain.LeaveRequest{
		LeaveID:        m.LeaveID,
		EmployeeID:     m.EmployeeID,
		EmployeeName:   m.EmployeeName,
		LeaveType:      domain.LeaveType(m.LeaveType),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		Reason:         m.Reason,
		ApprovalStatus: domain.ApprovalStatus(m.ApprovalStatus),
		ApprovedBy:     m.ApprovedBy,
		ApprovedByName: m.ApprovedByName,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func (r *PgxLeaveRepository) SaveLeave(ctx context.Context, leave domain.LeaveRequest) error {
	query := `
        INSERT INTO leaves (leave_id, employee_id, employee_name, leave_type, start_date, end_date, reason, approval_status, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
    `
	_, err := r.db.Exec(ctx, query,
		leave.LeaveID,
		leave.EmployeeID,
		leave.EmployeeName,
		string(leave.LeaveType),
		leave.StartDate,
		leave.EndDate,
		leave.Reason,
		string(leave.ApprovalStatus),
		leave.CreatedAt,
		leave.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save leave request: %w", err)
	}
	return nil
}

func (r *PgxLeaveRepository) FindLeaveByID(ctx context.Context, leaveID string) (*domain.LeaveRequest, error) {
	query := `
		SELECT l.leave_id, l.employee_id, l.employee_name, l.leave_type, l.start_date, l.end_date,
		       l.reason, l.approval_status, l.approved_by, a.name AS approved_by_name,
		       l.created_at, l.updated_at
		FROM leaves l
		LEFT JOIN users a ON l.approved_by = a.user_id
		WHERE l.leave_id = $1;
	`
	var m models.LeaveRequest
	err := r.db.QueryRow(ctx, query, leaveID).Scan(
		&m.LeaveID, &m.EmployeeID, &m.EmployeeName, &m.LeaveType, &m.StartDate, &m.EndDate,
		&m.Reason, &m.ApprovalStatus, &m.ApprovedBy, &m.ApprovedByName,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find leave %s: %w", leaveID, err)
	}
	l := toDomainLeave(m)
	return &l, nil
}

func (r *PgxLeaveRepository) FindLeaves(ctx context.Context, limit, offset int) ([]domain.LeaveRequest, error) {
	limit, offset = normalizeLimitOffset(limit, offset, 100)

	query := `
        SELECT l.leave_id, l.employee_id, l.employee_name, l.leave_type, l.start_date, l.end_date,
               l.reason, l.approval_status, l.approved_by, a.name AS approved_by_name,
               l.created_at, l.updated_at
        FROM leaves l
        LEFT JOIN users a ON l.approved_by = a.user_id
        ORDER BY l.created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaves: %w", err)
	}
	defer rows.Close()

	leaves := []domain.LeaveRequest{}
	for rows.Next() {
		var m models.LeaveRequest
		if err := rows.Scan(
			&m.LeaveID, &m.EmployeeID, &m.EmployeeName, &m.LeaveType, &m.StartDate, &m.EndDate,
			&m.Reason, &m.ApprovalStatus, &m.ApprovedBy, &m.ApprovedByName,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leave row: %w", err)
		}
		leaves = append(leaves, toDomainLeave(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating leave rows: %w", err)
	}
	return leaves, nil
}

// SetApprovalStatus is deliberately a single UPDATE ... RETURNING with
// no pending-state guard: a second approve/reject overwrites the first
// (last writer wins) and the statement's row-level atomicity is the
// only concurrency control. Read-modify-write must never be split
// across two round trips here.
func (r *PgxLeaveRepository) SetApprovalStatus(ctx context.Context, leaveID string, status domain.ApprovalStatus, approverID string, now time.Time) (*domain.LeaveRequest, error) {
	query := `
        UPDATE leaves
        SET approval_status = $1,
            approved_by = $2,
            updated_at = $3
        WHERE leave_id = $4
        RETURNING leave_id, employee_id, employee_name, leave_type, start_date, end_date,
                  reason, approval_status, approved_by, created_at, updated_at;
    `
	var m models.LeaveRequest
	err := r.db.QueryRow(ctx, query, string(status), approverID, now, leaveID).Scan(
		&m.LeaveID, &m.EmployeeID, &m.EmployeeName, &m.LeaveType, &m.StartDate, &m.EndDate,
		&m.Reason, &m.ApprovalStatus, &m.ApprovedBy,
		&m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to set approval status on leave %s: %w", leaveID, err)
	}
	l := toDomainLeave(m)
	return &l, nil
}
