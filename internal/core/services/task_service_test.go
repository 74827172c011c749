package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/teamtrackr/teampulse_app/internal/apperrors"
	"github.com/teamtrackr/teampulse_app/internal/core/domain"
	portsrepo "github.com/teamtrackr/teampulse_app/internal/core/ports/repositories"
	portssvc "github.com/teamtrackr/teampulse_app/internal/core/ports/services"
	"github.com/teamtrackr/teampulse_app/internal/core/services"
	"github.com/teamtrackr/teampulse_app/internal/dto"
)

type TaskServiceTestSuite struct {
	suite.Suite
	mockRepo     *MockTaskRepository
	mockUserRepo *MockUserRepository
	mockNotifier *MockNotifier
	service      portssvc.TaskSvcFacade

	creator domain.Principal
}

func (suite *TaskServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTaskRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockNotifier = new(MockNotifier)
	suite.service = services.NewTaskService(suite.mockRepo, suite.mockUserRepo, suite.mockNotifier)

	suite.creator = domain.Principal{ID: uuid.NewString(), Role: domain.RoleManager}
}

func (suite *TaskServiceTestSuite) TestCreateTask_DefaultsAndNoAssignee() {
	ctx := context.Background()
	req := dto.CreateTaskRequest{Description: "Write onboarding doc"}

	suite.mockRepo.On("SaveTask", ctx, mock.MatchedBy(func(t domain.Task) bool {
		return t.Description == req.Description &&
			t.Status == domain.TaskBacklog &&
			t.Priority == domain.PriorityMedium &&
			t.AssignedTo == nil
	})).Return(nil).Once()

	task, err := suite.service.CreateTask(ctx, suite.creator, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(task)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestCreateTask_AssignedToOther_Notifies() {
	ctx := context.Background()
	assigneeID := uuid.NewString()
	req := dto.CreateTaskRequest{
		Description: "Prepare quarterly review",
		AssignedTo:  &assigneeID,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, assigneeID).
		Return(&domain.User{UserID: assigneeID, Name: "Carol"}, nil).Once()
	suite.mockRepo.On("SaveTask", ctx, mock.AnythingOfType("domain.Task")).Return(nil).Once()
	suite.mockNotifier.On("Notify", ctx, assigneeID, domain.NotificationTaskAssigned,
		"New task assigned: Prepare quarterly review").Return(nil).Once()

	task, err := suite.service.CreateTask(ctx, suite.creator, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(task.AssignedTo)
	suite.Equal(assigneeID, *task.AssignedTo)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestCreateTask_SelfAssigned_NoNotification() {
	ctx := context.Background()
	req := dto.CreateTaskRequest{
		Description: "Review own backlog",
		AssignedTo:  &suite.creator.ID,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, suite.creator.ID).
		Return(&domain.User{UserID: suite.creator.ID, Name: "Self"}, nil).Once()
	suite.mockRepo.On("SaveTask", ctx, mock.AnythingOfType("domain.Task")).Return(nil).Once()

	_, err := suite.service.CreateTask(ctx, suite.creator, req)

	suite.Require().NoError(err)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestCreateTask_UnknownAssignee() {
	ctx := context.Background()
	assigneeID := uuid.NewString()
	req := dto.CreateTaskRequest{
		Description: "Task for ghost",
		AssignedTo:  &assigneeID,
	}

	suite.mockUserRepo.On("FindUserByID", ctx, assigneeID).
		Return(nil, apperrors.ErrNotFound).Once()

	task, err := suite.service.CreateTask(ctx, suite.creator, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(task)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveTask", mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_Reassignment_Notifies() {
	ctx := context.Background()
	taskID := uuid.NewString()
	oldAssignee := uuid.NewString()
	newAssignee := uuid.NewString()
	req := dto.UpdateTaskRequest{AssignedTo: &newAssignee}

	suite.mockUserRepo.On("FindUserByID", ctx, newAssignee).
		Return(&domain.User{UserID: newAssignee, Name: "Dana"}, nil).Once()
	suite.mockRepo.On("FindTaskByID", ctx, taskID).
		Return(&domain.Task{TaskID: taskID, Description: "Migrate CI", AssignedTo: &oldAssignee}, nil).Once()
	suite.mockRepo.On("UpdateTask", ctx, taskID, mock.MatchedBy(func(u portsrepo.TaskUpdate) bool {
		return u.AssignedTo != nil && *u.AssignedTo == newAssignee && u.Status == nil
	})).Return(&domain.Task{TaskID: taskID, Description: "Migrate CI", AssignedTo: &newAssignee}, nil).Once()
	suite.mockNotifier.On("Notify", ctx, newAssignee, domain.NotificationTaskAssigned,
		"New task assigned: Migrate CI").Return(nil).Once()

	task, err := suite.service.UpdateTask(ctx, taskID, req)

	suite.Require().NoError(err)
	suite.Equal(newAssignee, *task.AssignedTo)
	suite.mockNotifier.AssertExpectations(suite.T())
}

func (suite *TaskServiceTestSuite) TestUpdateTask_StatusOnly_NoNotification() {
	ctx := context.Background()
	taskID := uuid.NewString()
	assignee := uuid.NewString()
	status := "completed"
	req := dto.UpdateTaskRequest{Status: &status}

	suite.mockRepo.On("FindTaskByID", ctx, taskID).
		Return(&domain.Task{TaskID: taskID, AssignedTo: &assignee, Status: domain.TaskInProgress}, nil).Once()
	suite.mockRepo.On("UpdateTask", ctx, taskID, mock.MatchedBy(func(u portsrepo.TaskUpdate) bool {
		return u.Status != nil && *u.Status == domain.TaskCompleted
	})).Return(&domain.Task{TaskID: taskID, AssignedTo: &assignee, Status: domain.TaskCompleted}, nil).Once()

	_, err := suite.service.UpdateTask(ctx, taskID, req)

	suite.Require().NoError(err)
	suite.mockNotifier.AssertNotCalled(suite.T(), "Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_EmptyAssignee() {
	ctx := context.Background()
	taskID := uuid.NewString()
	empty := ""
	req := dto.UpdateTaskRequest{AssignedTo: &empty}

	task, err := suite.service.UpdateTask(ctx, taskID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(task)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_UnknownAssignee() {
	ctx := context.Background()
	taskID := uuid.NewString()
	assigneeID := uuid.NewString()
	req := dto.UpdateTaskRequest{AssignedTo: &assigneeID}

	suite.mockUserRepo.On("FindUserByID", ctx, assigneeID).
		Return(nil, apperrors.ErrNotFound).Once()

	task, err := suite.service.UpdateTask(ctx, taskID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(task)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateTask", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TaskServiceTestSuite) TestUpdateTask_NotFound() {
	ctx := context.Background()
	taskID := uuid.NewString()
	desc := "nope"

	suite.mockRepo.On("FindTaskByID", ctx, taskID).
		Return(nil, apperrors.ErrNotFound).Once()

	task, err := suite.service.UpdateTask(ctx, taskID, dto.UpdateTaskRequest{Description: &desc})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(task)
}

func (suite *TaskServiceTestSuite) TestDeleteTask_Delegates() {
	ctx := context.Background()
	taskID := uuid.NewString()

	suite.mockRepo.On("DeleteTask", ctx, taskID).Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteTask(ctx, taskID))
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestTaskServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TaskServiceTestSuite))
}
