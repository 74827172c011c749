package services

import (
	"context"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	"github.com/teamtrackr/teampulse_app/internal/dto"
)

// UserReaderSvc defines read operations for user data.
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data.
type UserWriterSvc interface {
	// Register creates a new local user with a bcrypt-hashed password.
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)

	// CreateOAuthUser finds or creates a user from a validated OAuth
	// identity and returns it.
	CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// SetUserRole assigns a role to an existing user. Only admin
	// principals may call it.
	SetUserRole(ctx context.Context, principal domain.Principal, userID string, role domain.Role) (*domain.User, error)
}

// UserAuthSvc defines operations for user authentication.
type UserAuthSvc interface {
	// Authenticate checks email/password credentials and returns the
	// user on success, apperrors.ErrUnauthorized otherwise.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces.
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
