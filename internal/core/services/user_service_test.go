package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/teamtrackr/teampulse_app/internal/apperrors"
	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/core/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
	"github.com/teamtrackr/teampulse_app/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Dana", Email: "dana@example.com", Password: "s3cret-pw"}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.Role == domain.RoleEmployee &&
			u.AuthProvider == domain.ProviderLocal &&
			u.PasswordHash != "" && u.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.True(utils.CheckPasswordHash(req.Password, user.PasswordHash))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	req := dto.RegisterRequest{Name: "Dana", Email: "dana@example.com", Password: "s3cret-pw"}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).
		Return(&domain.User{UserID: "existing", Email: req.Email}, nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	suite.mockRepo.On("FindUserByEmail", ctx, "dana@example.com").
		Return(&domain.User{UserID: "u1", Email: "dana@example.com", PasswordHash: hash}, nil).Once()

	user, err := suite.service.Authenticate(ctx, "dana@example.com", "correct-horse")

	suite.Require().NoError(err)
	suite.Equal("u1", user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	suite.Require().NoError(err)

	suite.mockRepo.On("FindUserByEmail", ctx, "dana@example.com").
		Return(&domain.User{UserID: "u1", PasswordHash: hash}, nil).Once()

	user, err := suite.service.Authenticate(ctx, "dana@example.com", "wrong")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmailSameError() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "ghost@example.com").
		Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "ghost@example.com", "anything")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestAuthenticate_OAuthAccountHasNoPassword() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "sso@example.com").
		Return(&domain.User{UserID: "u2", AuthProvider: domain.ProviderGoogle}, nil).Once()

	user, err := suite.service.Authenticate(ctx, "sso@example.com", "anything")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(user)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ExistingByEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: "u3", Email: "sso@example.com"}

	suite.mockRepo.On("FindUserByEmail", ctx, "sso@example.com").Return(existing, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "SSO User", "sso@example.com", domain.ProviderGoogle, "google-sub-1")

	suite.Require().NoError(err)
	suite.Equal(existing, user)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_FirstSignIn() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "new@example.com" &&
			u.AuthProvider == domain.ProviderGoogle &&
			u.ProviderUserID == "google-sub-2" &&
			u.Role == domain.RoleEmployee
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, "New User", "new@example.com", domain.ProviderGoogle, "google-sub-2")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSetUserRole_AdminPromotes() {
	ctx := context.Background()
	admin := domain.Principal{ID: "admin-1", Role: domain.RoleAdmin}

	suite.mockRepo.On("UpdateUserRole", ctx, "u1", domain.RoleManager).
		Return(&domain.User{UserID: "u1", Role: domain.RoleManager}, nil).Once()

	user, err := suite.service.SetUserRole(ctx, admin, "u1", domain.RoleManager)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleManager, user.Role)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestSetUserRole_ManagerForbidden() {
	ctx := context.Background()
	manager := domain.Principal{ID: "mgr-1", Role: domain.RoleManager}

	user, err := suite.service.SetUserRole(ctx, manager, "u1", domain.RoleAdmin)

	suite.Require().Error(err)
	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(403, appErr.Code)
	suite.Nil(user)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserRole", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestSetUserRole_UnknownRole() {
	ctx := context.Background()
	admin := domain.Principal{ID: "admin-1", Role: domain.RoleAdmin}

	user, err := suite.service.SetUserRole(ctx, admin, "u1", domain.Role("superuser"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(user)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateUserRole", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestSetUserRole_UnknownUser() {
	ctx := context.Background()
	admin := domain.Principal{ID: "admin-1", Role: domain.RoleAdmin}

	suite.mockRepo.On("UpdateUserRole", ctx, "ghost", domain.RoleManager).
		Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.SetUserRole(ctx, admin, "ghost", domain.RoleManager)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(user)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
