package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
	"github.com/mlakumulu/travel_backend/internal/core/services"
	"github.com/mlakumulu/travel_backend/internal/dto"
	"github.com/mlakumulu/travel_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockUserRepository) FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Test Suite Setup ---
type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRepository
	service  *services.UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) createRequest() dto.CreateUserRequest {
	return dto.CreateUserRequest{
		Email:     "wayan@example.com",
		Password:  "s3cretpass",
		FirstName: "Wayan",
		LastName:  "Putra",
	}
}

func (suite *UserServiceTestSuite) TestCreateUser_DefaultsToTouristRole() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()

	var saved domain.User
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.User)
	}).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleTourist, user.Role)
	suite.True(user.IsActive)
	suite.NotEmpty(user.UserID)
	suite.NotEqual(req.Password, saved.PasswordHash)
	suite.True(utils.CheckPasswordHash(req.Password, saved.PasswordHash))
}

func (suite *UserServiceTestSuite) TestCreateUser_EmployeeRoleHonored() {
	ctx := context.Background()
	req := suite.createRequest()
	req.Role = "EMPLOYEE"

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(domain.RoleEmployee, user.Role)
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	req := suite.createRequest()
	existing := domain.User{UserID: uuid.NewString(), Email: req.Email}

	suite.mockRepo.On("FindUserByEmail", ctx, req.Email).Return(&existing, nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(user)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) activeUser(password string) domain.User {
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	return domain.User{
		UserID:       uuid.NewString(),
		Email:        "wayan@example.com",
		PasswordHash: hash,
		Role:         domain.RoleTourist,
		IsActive:     true,
	}
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	user := suite.activeUser("s3cretpass")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(&user, nil).Once()

	got, err := suite.service.Authenticate(ctx, user.Email, "s3cretpass")

	suite.Require().NoError(err)
	suite.Equal(user.UserID, got.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	user := suite.activeUser("s3cretpass")

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(&user, nil).Once()

	got, err := suite.service.Authenticate(ctx, user.Email, "wrongpass")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmailMasksAsUnauthorized() {
	ctx := context.Background()

	suite.mockRepo.On("FindUserByEmail", ctx, "nobody@example.com").Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.Authenticate(ctx, "nobody@example.com", "whatever")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
}

func (suite *UserServiceTestSuite) TestAuthenticate_InactiveUser() {
	ctx := context.Background()
	user := suite.activeUser("s3cretpass")
	user.IsActive = false

	suite.mockRepo.On("FindUserByEmail", ctx, user.Email).Return(&user, nil).Once()

	got, err := suite.service.Authenticate(ctx, user.Email, "s3cretpass")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(got)
}

func (suite *UserServiceTestSuite) TestGetEmployeeByUserID_MissingProfile() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockRepo.On("FindEmployeeByUserID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetEmployeeByUserID(ctx, userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(got)
}

func (suite *UserServiceTestSuite) TestListEmployees_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockRepo.On("FindEmployees", ctx).Return(nil, nil).Once()

	got, err := suite.service.ListEmployees(ctx)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
