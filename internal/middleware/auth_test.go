package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	"github.com/teamtrackr/teampulse_app/internal/middleware"
	"github.com/teamtrackr/teampulse_app/internal/utils"
)

const testSecret = "test-secret"

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))

	authed := r.Group("/", middleware.AuthMiddleware(testSecret))
	authed.GET("/whoami", func(c *gin.Context) {
		principal, ok := middleware.GetPrincipalFromContext(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "no principal"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": principal.ID, "role": string(principal.Role)})
	})
	authed.PUT("/approve", middleware.RequireManager(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	authed.PUT("/role", middleware.RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func tokenFor(t *testing.T, role domain.Role, expiry time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWT(&domain.User{
		UserID: "user-1",
		Email:  "user@example.com",
		Role:   role,
	}, testSecret, expiry, "test-issuer")
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := newTestRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_TamperedToken(t *testing.T) {
	r := newTestRouter()
	token, err := utils.GenerateJWT(&domain.User{UserID: "user-1", Role: domain.RoleEmployee}, "other-secret", time.Hour, "test-issuer")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := newTestRouter()
	token := tokenFor(t, domain.RoleEmployee, -time.Minute)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestAuthMiddleware_ValidTokenResolvesPrincipal(t *testing.T) {
	r := newTestRouter()
	token := tokenFor(t, domain.RoleManager, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"user-1"`)
	assert.Contains(t, w.Body.String(), `"role":"manager"`)
}

func TestRequireManager_EmployeeForbidden(t *testing.T) {
	r := newTestRouter()
	token := tokenFor(t, domain.RoleEmployee, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/approve", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireManager_AdminAllowed(t *testing.T) {
	r := newTestRouter()
	token := tokenFor(t, domain.RoleAdmin, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/approve", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_ManagerForbidden(t *testing.T) {
	r := newTestRouter()
	token := tokenFor(t, domain.RoleManager, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/role", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Admin role required")
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	r := newTestRouter()
	token := tokenFor(t, domain.RoleAdmin, time.Hour)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/role", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
