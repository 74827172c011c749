package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/teamtrackr/teampulse_app/internal/apperrors"
	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/core/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
)

type LeaveServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockLeaveRepository
	mockUserRepo *MockUserRepository
	mockNotifier *MockNotifier
	service      portssvc.LeaveSvcFacade

	employee domain.Principal
	manager  domain.Principal
}

func (suite *LeaveServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLeaveRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewLeaveService(suite.mockRepo, suite.mockUserRepo, suite.mockNotifier)

	suite.employee = domain.Principal{ID: uuid.NewString(), Email: "emp@example.com", Role: domain.RoleEmployee}
	suite.manager = domain.Principal{ID: uuid.NewString(), Email: "mgr@example.com", Role: domain.RoleManager}
}

func (suite *LeaveServiceTestSuite) TestSubmitLeave_Success() {
	ctx := context.Background()
	req := dto.CreateLeaveRequest{
		LeaveType: "vacation",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
		Reason:    "family trip",
	}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.employee.ID).
		Return(&domain.User{UserID: suite.employee.ID, Name: "Alice Employee"}, nil).Once()
	suite.mockRepo.On("SaveLeave", ctx, mock.MatchedBy(func(l domain.LeaveRequest) bool {
		return l.EmployeeID == suite.employee.ID &&
			l.EmployeeName == "Alice Employee" &&
			l.LeaveType == domain.LeaveVacation &&
			l.ApprovalStatus == domain.ApprovalPending
	})).Return(nil).Once()

	leave, err := suite.service.SubmitLeave(ctx, suite.employee, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(leave)
	suite.Equal(domain.ApprovalPending, leave.ApprovalStatus)
	suite.Nil(leave.ApprovedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestSubmitLeave_InvalidDateOrder() {
	ctx := context.Background()
	req := dto.CreateLeaveRequest{
		LeaveType: "sick",
		StartDate: "2026-09-05",
		EndDate:   "2026-09-01",
	}

	leave, err := suite.service.SubmitLeave(ctx, suite.employee, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(leave)
	// Nothing may be persisted when validation fails.
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveLeave", mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestSubmitLeave_MalformedDate() {
	ctx := context.Background()
	req := dto.CreateLeaveRequest{
		LeaveType: "sick",
		StartDate: "01/09/2026",
		EndDate:   "2026-09-05",
	}

	_, err := suite.service.SubmitLeave(ctx, suite.employee, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveLeave", mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestApproveLeave_Success_NotifiesEmployee() {
	ctx := context.Background()
	leaveID := uuid.NewString()
	employeeID := uuid.NewString()

	suite.mockRepo.On("SetApprovalStatus", ctx, leaveID, domain.ApprovalApproved, suite.manager.ID, mock.AnythingOfType("time.Time")).
		Return(&domain.LeaveRequest{
			LeaveID:        leaveID,
			EmployeeID:     employeeID,
			ApprovalStatus: domain.ApprovalApproved,
			ApprovedBy:     &suite.manager.ID,
		}, nil).Once()
	suite.mockNotifier.On("Notify", ctx, employeeID, domain.NotificationLeaveApproved, "Your leave request has been approved").
		Return(nil).Once()

	leave, err := suite.service.ApproveLeave(ctx, suite.manager, leaveID)

	suite.Require().NoError(err)
	suite.Equal(domain.ApprovalApproved, leave.ApprovalStatus)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestRejectLeave_Success_NotifiesEmployee() {
	ctx := context.Background()
	leaveID := uuid.NewString()
	employeeID := uuid.NewString()

	suite.mockRepo.On("SetApprovalStatus", ctx, leaveID, domain.ApprovalRejected, suite.manager.ID, mock.AnythingOfType("time.Time")).
		Return(&domain.LeaveRequest{
			LeaveID:        leaveID,
			EmployeeID:     employeeID,
			ApprovalStatus: domain.ApprovalRejected,
		}, nil).Once()
	suite.mockNotifier.On("Notify", ctx, employeeID, domain.NotificationLeaveRejected, "Your leave request has been rejected").
		Return(nil).Once()

	leave, err := suite.service.RejectLeave(ctx, suite.manager, leaveID)

	suite.Require().NoError(err)
	suite.Equal(domain.ApprovalRejected, leave.ApprovalStatus)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestApproveLeave_EmployeeForbidden() {
	ctx := context.Background()
	leaveID := uuid.NewString()

	leave, err := suite.service.ApproveLeave(ctx, suite.employee, leaveID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.Nil(leave)
	// The row must stay untouched and nothing may be emitted.
	suite.mockRepo.AssertNotCalled(suite.T(), "SetApprovalStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestApproveLeave_AdminAllowed() {
	ctx := context.Background()
	leaveID := uuid.NewString()
	admin := domain.Principal{ID: uuid.NewString(), Role: domain.RoleAdmin}

	suite.mockRepo.On("SetApprovalStatus", ctx, leaveID, domain.ApprovalApproved, admin.ID, mock.AnythingOfType("time.Time")).
		Return(&domain.LeaveRequest{LeaveID: leaveID, EmployeeID: uuid.NewString(), ApprovalStatus: domain.ApprovalApproved}, nil).Once()
	suite.mockNotifier.On("Notify", ctx, mock.Anything, domain.NotificationLeaveApproved, mock.Anything).Return(nil).Once()

	_, err := suite.service.ApproveLeave(ctx, admin, leaveID)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestApproveLeave_NotFound_NoNotification() {
	ctx := context.Background()
	leaveID := uuid.NewString()

	suite.mockRepo.On("SetApprovalStatus", ctx, leaveID, domain.ApprovalApproved, suite.manager.ID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()

	leave, err := suite.service.ApproveLeave(ctx, suite.manager, leaveID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(leave)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveServiceTestSuite) TestApproveLeave_NotifyFailureDoesNotFailApproval() {
	ctx := context.Background()
	leaveID := uuid.NewString()
	employeeID := uuid.NewString()

	suite.mockRepo.On("SetApprovalStatus", ctx, leaveID, domain.ApprovalApproved, suite.manager.ID, mock.AnythingOfType("time.Time")).
		Return(&domain.LeaveRequest{LeaveID: leaveID, EmployeeID: employeeID, ApprovalStatus: domain.ApprovalApproved}, nil).Once()
	suite.mockNotifier.On("Notify", ctx, employeeID, domain.NotificationLeaveApproved, mock.Anything).
		Return(assert.AnError).Once()

	leave, err := suite.service.ApproveLeave(ctx, suite.manager, leaveID)

	suite.Require().NoError(err)
	suite.Require().NotNil(leave)
	suite.Equal(domain.ApprovalApproved, leave.ApprovalStatus)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func TestLeaveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveServiceTestSuite))
}
