package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
)

// contextKey is a private type for context keys set by this package.
// Using a custom type prevents collisions with other packages.
type contextKey string

const (
	loggerCtxKey    = contextKey("logger")
	principalCtxKey = contextKey("principal")
)

// GetPrincipalFromContext retrieves the authenticated principal from the
// request context. It returns the principal and a boolean indicating if
// it was found.
func GetPrincipalFromContext(c *gin.Context) (domain.Principal, bool) {
	return GetPrincipalFromCtx(c.Request.Context())
}

// GetPrincipalFromCtx is the standard-context variant of
// GetPrincipalFromContext, for callers below the gin layer.
func GetPrincipalFromCtx(ctx context.Context) (domain.Principal, bool) {
	val := ctx.Value(principalCtxKey)
	if val == nil {
		return domain.Principal{}, false
	}
	principal, ok := val.(domain.Principal)
	return principal, ok
}

// WithPrincipal returns a context carrying the given principal.
func WithPrincipal(ctx context.Context, principal domain.Principal) context.Context {
	return context.WithValue(ctx, principalCtxKey, principal)
}
