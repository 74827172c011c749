package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teamtrackr/teampulse_app/internal/apperrors"
	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
	"github.com/teamtrackr/teampulse_app/internal/models"
)

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{db: db}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func toModelUser(d domain.User) models.User {
	var providerUserID *string
	if d.ProviderUserID != "" {
		providerUserID = &d.ProviderUserID
	}
	return models.User{
		UserID:         d.UserID,
		Name:           d.Name,
		Email:          d.Email,
		Role:           string(d.Role),
		PasswordHash:   d.PasswordHash,
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: providerUserID,
		CreatedAt:      d.CreatedAt,
	}
}

func toDomainUser(m models.User) domain.User {
	providerUserID := ""
	if m.ProviderUserID != nil {
		providerUserID = *m.ProviderUserID
	}
	return domain.User{
		UserID:         m.UserID,
		Name:           m.Name,
		Email:          m.Email,
		Role:           domain.Role(m.Role),
		PasswordHash:   m.PasswordHash,
		AuthProvider:   domain.AuthProvider(m.AuthProvider),
		ProviderUserID: providerUserID,
		CreatedAt:      m.CreatedAt,
	}
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := toModelUser(user)
	query := `
        INSERT INTO users (user_id, name, email, role, password_hash, auth_provider, provider_user_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
    `
	_, err := r.db.Exec(ctx, query,
		modelUser.UserID,
		modelUser.Name,
		modelUser.Email,
		modelUser.Role,
		modelUser.PasswordHash,
		modelUser.AuthProvider,
		modelUser.ProviderUserID,
		modelUser.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation on email
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, name, email, role, password_hash, auth_provider, provider_user_id, created_at
		FROM users
		WHERE user_id = $1;
	`
	return r.scanOne(ctx, query, userID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, name, email, role, password_hash, auth_provider, provider_user_id, created_at
		FROM users
		WHERE email = $1;
	`
	return r.scanOne(ctx, query, email)
}

func (r *PgxUserRepository) scanOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var m models.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.Role,
		&m.PasswordHash,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) UpdateUserRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
	query := `
        UPDATE users
        SET role = $1
        WHERE user_id = $2
        RETURNING user_id, name, email, role, password_hash, auth_provider, provider_user_id, created_at;
    `
	var m models.User
	err := r.db.QueryRow(ctx, query, string(role), userID).Scan(
		&m.UserID,
		&m.Name,
		&m.Email,
		&m.Role,
		&m.PasswordHash,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update role for user %s: %w", userID, err)
	}
	u := toDomainUser(m)
	return &u, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	limit, offset = normalizeLimitOffset(limit, offset, 50)

	query := `
        SELECT user_id, name, email, role, password_hash, auth_provider, provider_user_id, created_at
        FROM users
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2;
    `
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var m models.User
		if err := rows.Scan(
			&m.UserID,
			&m.Name,
			&m.Email,
			&m.Role,
			&m.PasswordHash,
			&m.AuthProvider,
			&m.ProviderUserID,
			&m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, toDomainUser(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed iterating user rows: %w", err)
	}
	return users, nil
}
