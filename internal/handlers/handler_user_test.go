package handlers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
	"github.com/teamtrackr/teampulse_app/internal/handlers"
	"github.com/teamtrackr/teampulse_app/internal/platform/config"
	"github.com/teamtrackr/teampulse_app/internal/utils"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) CreateOAuthUser(ctx context.Context, name, email string, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	args := m.Called(ctx, name, email, provider, providerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) SetUserRole(ctx context.Context, principal domain.Principal, userID string, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, principal, userID, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Test Suite ---
type UserHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockUserService *MockUserService
	cfg             *config.Config
}

func (suite *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.cfg = &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "teampulse-test",
		IsProduction:      true,
	}

	suite.mockUserService = new(MockUserService)
	services := &portssvc.ServiceContainer{
		User: suite.mockUserService,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, suite.cfg, services, nil)
}

func (suite *UserHandlerTestSuite) tokenFor(userID string, role domain.Role) string {
	token, err := utils.GenerateJWT(&domain.User{UserID: userID, Role: role}, suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
	suite.Require().NoError(err)
	return token
}

func (suite *UserHandlerTestSuite) TestSetUserRole_AdminSuccess() {
	adminID := uuid.NewString()
	targetID := uuid.NewString()
	token := suite.tokenFor(adminID, domain.RoleAdmin)

	suite.mockUserService.On("SetUserRole", mock.Anything,
		mock.MatchedBy(func(p domain.Principal) bool { return p.ID == adminID && p.Role == domain.RoleAdmin }),
		targetID, domain.RoleManager,
	).Return(&domain.User{UserID: targetID, Role: domain.RoleManager}, nil).Once()

	w := doJSONRequest(suite.router, http.MethodPut,
		fmt.Sprintf("/api/v1/users/%s/role", targetID), token, `{"role":"manager"}`)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"role":"manager"`)
	suite.mockUserService.AssertExpectations(suite.T())
}

func (suite *UserHandlerTestSuite) TestSetUserRole_ManagerForbiddenAtRoute() {
	token := suite.tokenFor(uuid.NewString(), domain.RoleManager)

	w := doJSONRequest(suite.router, http.MethodPut,
		fmt.Sprintf("/api/v1/users/%s/role", uuid.NewString()), token, `{"role":"admin"}`)

	suite.Equal(http.StatusForbidden, w.Code)
	var env dto.Envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	suite.False(env.Success)
	suite.Equal("Access denied. Admin role required.", env.Error)
	suite.mockUserService.AssertNotCalled(suite.T(), "SetUserRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserHandlerTestSuite) TestSetUserRole_InvalidRole() {
	token := suite.tokenFor(uuid.NewString(), domain.RoleAdmin)

	w := doJSONRequest(suite.router, http.MethodPut,
		fmt.Sprintf("/api/v1/users/%s/role", uuid.NewString()), token, `{"role":"superuser"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockUserService.AssertNotCalled(suite.T(), "SetUserRole", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

// doJSONRequest drives a router with an optional bearer token and JSON
// body. Shared by the handler suites in this package.
func doJSONRequest(router *gin.Engine, method, url, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
