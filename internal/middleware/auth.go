package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	"github.com/teamtrackr/teampulse_app/internal/dto"
	"github.com/teamtrackr/teampulse_app/internal/utils"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT
// access tokens and resolves them into a principal. Every failure mode
// (missing header, malformed header, expired or tampered token) aborts
// with 401; the distinction is only surfaced in the error message.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorEnvelope("Authorization header required"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorEnvelope("Authorization header format must be Bearer {token}"))
			return
		}

		claims, err := utils.ParseJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorEnvelope(msg))
			return
		}

		if claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorEnvelope("Invalid token claims"))
			return
		}

		principal := domain.Principal{
			ID:    claims.Subject,
			Email: claims.Email,
			Role:  claims.Role,
		}

		// Store the principal in the context (using standard context)
		ctxWithPrincipal := WithPrincipal(c.Request.Context(), principal)

		// Add user ID to the logger and store the enriched logger back
		enrichedLogger := logger.With(slog.String("user_id", principal.ID))
		ctxWithLoggerAndPrincipal := context.WithValue(ctxWithPrincipal, loggerCtxKey, enrichedLogger)

		c.Request = c.Request.WithContext(ctxWithLoggerAndPrincipal)

		c.Next()
	}
}

// RequireAdmin gates admin-only endpoints such as role assignment. Like
// RequireManager it must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorEnvelope("Authentication required"))
			return
		}
		if !principal.Role.IsAdmin() {
			GetLoggerFromCtx(c.Request.Context()).Warn("Admin action attempted without admin role", slog.String("role", string(principal.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorEnvelope("Access denied. Admin role required."))
			return
		}
		c.Next()
	}
}

// RequireManager gates approval endpoints. It must run after
// AuthMiddleware; a request that reaches it without a principal is
// treated as unauthenticated rather than forbidden.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipalFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorEnvelope("Authentication required"))
			return
		}
		if !principal.Role.CanApprove() {
			GetLoggerFromCtx(c.Request.Context()).Warn("Approval attempted without manager role", slog.String("role", string(principal.Role)))
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorEnvelope("Access denied. Manager role required."))
			return
		}
		c.Next()
	}
}
