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

type PgxTaskRepository struct {
	db *pgxpool.Pool
}

func newPgxTaskRepository(db *pgxpool.Pool) portsrepo.TaskRepositoryFacade {
	return &PgxTaskRepository{db: db}
}

var _ portsrepo.TaskRepositoryFacade = (*PgxTaskRepository)(nil)

func toDomainTask(m models.Task) domain.Task {
	return domain.Task{
		TaskID:         m.TaskID,
		Description:    m.Description,
		AssignedTo:     m.AssignedTo,
		AssignedToName: m.AssignedToName,
		Status:         domain.TaskStatus(m.Status),
		Priority:       domain.TaskPriority(m.Priority),
		DueDate:        m.DueDate,
		EstimatedHours: m.EstimatedHours,
		ActualHours:    m.ActualHours,
		CreatedAt:      m.CreatedAt,
		LastUpdatedAt:  m.LastUpdatedAt,
	}
}

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	query := `
        INSERT INTO tasks (task_id, task_description, assigned_to, status, priority, due_date, estimated_hours, creation_date, last_updated_date)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
    `
	_, err := r.db.Exec(ctx, query,
		task.TaskID,
		task.Description,
		task.AssignedTo,
		string(task.Status),
		string(task.Priority),
		task.DueDate,
		task.EstimatedHours,
		task.CreatedAt,
		task.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save task: %w", err)
	}
	return nil
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID string) (*domain.Task, error) {
	query := `
		SELECT t.task_id, t.task_description, t.assigned_to, u.name AS assigned_to_name,
		       t.status, t.priority, t.due_date, t.estimated_hours, t.actual_hours,
		       t.creation_date, t.last_updated_date
		FROM tasks t
		LEFT JOIN users u ON t.assigned_to = u.user_id
		WHERE t.task_id = $1;
	`
	var m models.Task
	err := r.db.QueryRow(ctx, query, taskID).Scan(
		&m.TaskID, &m.Description, &m.AssignedTo, &m.AssignedToName,
		&m.Status, &m.Priority, &m.DueDate, &m.EstimatedHours, &m.ActualHours,
		&m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task %s: %w", taskID, err)
	}
	t := toDomainTask(m)
	return &t, nil
}

func (r *PgxTaskRepository) FindTasks(ctx context.Context, limit, offset int) ([]domain.Task, error) {
	limit, offset = normalizeLimitOffset(limit, offset, 100)

	query := `
        SELECT t.task_id, t.task_description, t.assigned_to, u.name AS assigned_to_name,
               t.status, t.priority, t.due_date, t.estimated_hours, t.actual_hours,
               t.creation_date, t.last_updated_date
        FROM tasks t
        LEFT JOIN users u ON t.assigned_to = u.user_id
        ORDER BY t.creation_date DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var m models.Task
		if err := rows.Scan(
			&m.TaskID, &m.Description, &m.AssignedTo, &m.AssignedToName,
			&m.Status, &m.Priority, &m.DueDate, &m.EstimatedHours, &m.ActualHours,
			&m.CreatedAt, &m.LastUpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, toDomainTask(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating task rows: %w", err)
	}
	return tasks, nil
}

// UpdateTask builds the SET list from the non-nil fields of upd.
// Column names come exclusively from the literals below; request keys
// can never name a column.
func (r *PgxTaskRepository) UpdateTask(ctx context.Context, taskID string, upd portsrepo.TaskUpdate) (*domain.Task, error) {
	b := newUpdateBuilder()
	if upd.Description != nil {
		b.Set("task_description", *upd.Description)
	}
	if upd.AssignedTo != nil {
		b.Set("assigned_to", *upd.AssignedTo)
	}
	if upd.Status != nil {
		b.Set("status", string(*upd.Status))
	}
	if upd.Priority != nil {
		b.Set("priority", string(*upd.Priority))
	}
	if upd.DueDate != nil {
		b.Set("due_date", *upd.DueDate)
	}
	if upd.EstimatedHours != nil {
		b.Set("estimated_hours", *upd.EstimatedHours)
	}
	if upd.ActualHours != nil {
		b.Set("actual_hours", *upd.ActualHours)
	}
	b.SetRaw("last_updated_date", "NOW()")

	setClause, args, next := b.Clause()
	query := fmt.Sprintf(`
        UPDATE tasks
        SET %s
        WHERE task_id = $%d
        RETURNING task_id, task_description, assigned_to, status, priority, due_date,
                  estimated_hours, actual_hours, creation_date, last_updated_date;
    `, setClause, next)
	args = append(args, taskID)

	var m models.Task
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&m.TaskID, &m.Description, &m.AssignedTo,
		&m.Status, &m.Priority, &m.DueDate, &m.EstimatedHours, &m.ActualHours,
		&m.CreatedAt, &m.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task %s: %w", taskID, err)
	}
	t := toDomainTask(m)
	return &t, nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, taskID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE task_id = $1;`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task %s: %w", taskID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
