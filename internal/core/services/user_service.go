package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/teamtrackr/teampulse_app/internal/apperrors"
	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
	"github.com/teamtrackr/teampulse_app/internal/utils"
)

type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new instance of userService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.userRepo.FindUsers(ctx, limit, offset)
}

// Register creates a local-credentials user. The first account of a
// deployment is created the same way; an existing admin elevates it
// through SetUserRole.
func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         req.Name,
		Email:        req.Email,
		Role:         domain.RoleEmployee,
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &user, nil
}

// CreateOAuthUser finds the user matching a validated external identity,
// creating one on first sign-in.
func (s *userService) CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	user := domain.User{
		UserID:         uuid.NewString(),
		Name:           name,
		Email:          email,
		Role:           domain.RoleEmployee,
		AuthProvider:   provider,
		ProviderUserID: providerUserID,
		CreatedAt:      time.Now(),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save oauth user: %w", err)
	}
	return &user, nil
}

// SetUserRole assigns a role to an existing user. The admin gate lives
// here as well as at the route so the invariant holds for every caller.
func (s *userService) SetUserRole(ctx context.Context, principal domain.Principal, userID string, role domain.Role) (*domain.User, error) {
	if !principal.Role.IsAdmin() {
		return nil, apperrors.NewForbiddenError("Access denied. Admin role required.")
	}

	switch role {
	case domain.RoleEmployee, domain.RoleManager, domain.RoleAdmin:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}

	return s.userRepo.UpdateUserRole(ctx, userID, role)
}

// Authenticate verifies email/password credentials. Unknown email, wrong
// password and password-less OAuth accounts all collapse into the same
// unauthorized error so responses don't leak which emails exist.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}

	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
