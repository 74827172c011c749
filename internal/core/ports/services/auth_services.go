package services

import (
	"context"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// TokenSvcFacade issues application JWTs.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT carrying the user's id,
	// email and role, returning the token and its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade handles the Google sign-in code exchange.
type GoogleOAuthSvcFacade interface {
	// ExchangeCodeForToken exchanges a frontend authorization code for
	// Google tokens.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateGoogleIDToken verifies the ID token signature and audience
	// and returns its payload.
	ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error)
}
