package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portssvc "github.com/mlakumulu/travel_backend/internal/core/ports/services"
	"github.com/mlakumulu/travel_backend/internal/dto"
	"github.com/mlakumulu/travel_backend/internal/handlers"
	"github.com/mlakumulu/travel_backend/internal/utils"
	"github.com/mlakumulu/travel_backend/pkg/config"
)

// --- Mock TripService ---
type MockTripService struct {
	mock.Mock
}

var _ portssvc.TripSvcFacade = (*MockTripService)(nil)

func (m *MockTripService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripService) GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripService) ListTripsByTourist(ctx context.Context, touristID string) ([]domain.Trip, error) {
	args := m.Called(ctx, touristID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripService) ListTripsByTouristUser(ctx context.Context, userID string) ([]domain.Trip, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, actingEmployeeID *string) (*domain.Trip, *domain.Transaction, error) {
	args := m.Called(ctx, req, actingEmployeeID)
	var trip *domain.Trip
	if args.Get(0) != nil {
		trip = args.Get(0).(*domain.Trip)
	}
	var txn *domain.Transaction
	if args.Get(1) != nil {
		txn = args.Get(1).(*domain.Transaction)
	}
	return trip, txn, args.Error(2)
}

func (m *MockTripService) UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, actingEmployeeID *string) (*domain.Trip, *domain.Transaction, error) {
	args := m.Called(ctx, tripID, req, actingEmployeeID)
	var trip *domain.Trip
	if args.Get(0) != nil {
		trip = args.Get(0).(*domain.Trip)
	}
	var txn *domain.Transaction
	if args.Get(1) != nil {
		txn = args.Get(1).(*domain.Transaction)
	}
	return trip, txn, args.Error(2)
}

func (m *MockTripService) DeleteTrip(ctx context.Context, tripID string, actingEmployeeID *string) (*dto.DeleteTripResponse, error) {
	args := m.Called(ctx, tripID, actingEmployeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DeleteTripResponse), args.Error(1)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
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

func (m *MockUserService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}

func (m *MockUserService) GetEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}

// --- Test Suite ---
type TripHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockTripService *MockTripService
	mockUserService *MockUserService
	jwtSecret       string
}

func (suite *TripHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockTripService = new(MockTripService)
	suite.mockUserService = new(MockUserService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // keeps swagger routes out of the test router
	}
	services := &portssvc.ServiceContainer{
		Trip: suite.mockTripService,
		User: suite.mockUserService,
	}
	handlers.RegisterRoutes(suite.router, cfg, nil, services)
}

// generateTestToken creates a signed JWT carrying the given role.
func (suite *TripHandlerTestSuite) generateTestToken(userID, role string) string {
	token, err := utils.GenerateJWT(userID, role, suite.jwtSecret, time.Hour, "travel-backend-test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *TripHandlerTestSuite) doRequest(method, path, token string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewBuffer(raw)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TripHandlerTestSuite) TestListTrips_EmployeeSuccess() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID, string(domain.RoleEmployee))

	trips := []domain.Trip{{TripID: uuid.NewString(), Name: "Bali Getaway"}}
	suite.mockTripService.On("ListTrips", mock.Anything).Return(trips, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/trips", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var got []domain.Trip
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got, 1)
	suite.Equal("Bali Getaway", got[0].Name)
}

func (suite *TripHandlerTestSuite) TestListTrips_TouristForbidden() {
	token := suite.generateTestToken(uuid.NewString(), string(domain.RoleTourist))

	w := suite.doRequest(http.MethodGet, "/api/v1/trips", token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockTripService.AssertNotCalled(suite.T(), "ListTrips", mock.Anything)
}

func (suite *TripHandlerTestSuite) TestListTrips_MissingTokenUnauthorized() {
	w := suite.doRequest(http.MethodGet, "/api/v1/trips", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *TripHandlerTestSuite) TestGetTrip_NotFound() {
	token := suite.generateTestToken(uuid.NewString(), string(domain.RoleTourist))
	tripID := uuid.NewString()

	suite.mockTripService.On("GetTripByID", mock.Anything, tripID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/trips/"+tripID, token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *TripHandlerTestSuite) TestCreateTrip_EmployeeProfileResolved() {
	userID := uuid.NewString()
	employeeID := uuid.NewString()
	token := suite.generateTestToken(userID, string(domain.RoleEmployee))

	touristID := uuid.NewString()
	body := map[string]any{
		"name":          "Bali Getaway",
		"startDateTime": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"endDateTime":   time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339),
		"destination":   map[string]any{"location": "Bali, Indonesia"},
		"price":         "1200.50",
		"touristID":     touristID,
	}

	suite.mockUserService.On("GetEmployeeByUserID", mock.Anything, userID).
		Return(&domain.Employee{EmployeeID: employeeID, UserID: userID}, nil).Once()

	trip := &domain.Trip{TripID: uuid.NewString(), Name: "Bali Getaway", Price: decimal.RequireFromString("1200.50")}
	txn := &domain.Transaction{TransactionID: uuid.NewString(), Status: domain.StatusCompleted}
	suite.mockTripService.On("CreateTrip", mock.Anything, mock.AnythingOfType("dto.CreateTripRequest"), mock.MatchedBy(func(id *string) bool {
		return id != nil && *id == employeeID
	})).Return(trip, txn, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/trips", token, body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TripResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(trip.TripID, resp.Trip.TripID)
	suite.Require().NotNil(resp.Transaction)
	suite.Equal(txn.TransactionID, resp.Transaction.TransactionID)
	suite.mockTripService.AssertExpectations(suite.T())
}

func (suite *TripHandlerTestSuite) TestCreateTrip_MissingEmployeeProfileSkipsBilling() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID, string(domain.RoleEmployee))

	body := map[string]any{
		"name":          "Bali Getaway",
		"startDateTime": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"endDateTime":   time.Now().Add(7 * 24 * time.Hour).Format(time.RFC3339),
		"destination":   map[string]any{"location": "Bali, Indonesia"},
		"touristID":     uuid.NewString(),
	}

	suite.mockUserService.On("GetEmployeeByUserID", mock.Anything, userID).
		Return(nil, apperrors.ErrNotFound).Once()

	trip := &domain.Trip{TripID: uuid.NewString(), Name: "Bali Getaway"}
	suite.mockTripService.On("CreateTrip", mock.Anything, mock.AnythingOfType("dto.CreateTripRequest"), (*string)(nil)).
		Return(trip, nil, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/trips", token, body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TripResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Nil(resp.Transaction)
}

func (suite *TripHandlerTestSuite) TestCreateTrip_InvalidBody() {
	token := suite.generateTestToken(uuid.NewString(), string(domain.RoleEmployee))

	w := suite.doRequest(http.MethodPost, "/api/v1/trips", token, map[string]any{"name": "missing everything else"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTripService.AssertNotCalled(suite.T(), "CreateTrip", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TripHandlerTestSuite) TestDeleteTrip_ReturnsRefundBundle() {
	userID := uuid.NewString()
	employeeID := uuid.NewString()
	token := suite.generateTestToken(userID, string(domain.RoleEmployee))
	tripID := uuid.NewString()

	suite.mockUserService.On("GetEmployeeByUserID", mock.Anything, userID).
		Return(&domain.Employee{EmployeeID: employeeID, UserID: userID}, nil).Once()

	refund := &domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        decimal.RequireFromString("1000.00"),
		Status:        domain.StatusRefunded,
	}
	result := &dto.DeleteTripResponse{
		Message: "Trip deleted successfully",
		Trip:    domain.DeletedTrip{Trip: domain.Trip{TripID: tripID}, DeletedAt: time.Now()},
		Refund:  refund,
	}
	suite.mockTripService.On("DeleteTrip", mock.Anything, tripID, mock.MatchedBy(func(id *string) bool {
		return id != nil && *id == employeeID
	})).Return(result, nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/trips/"+tripID, token, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.DeleteTripResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Trip deleted successfully", resp.Message)
	suite.Require().NotNil(resp.Refund)
	suite.Equal(domain.StatusRefunded, resp.Refund.Status)
}

func (suite *TripHandlerTestSuite) TestListTripsByTourist_TouristSeesOwnTrips() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID, string(domain.RoleTourist))
	someOtherTouristID := uuid.NewString()

	trips := []domain.Trip{{TripID: uuid.NewString(), Name: "Ubud Retreat"}}
	suite.mockTripService.On("ListTripsByTouristUser", mock.Anything, userID).Return(trips, nil).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/trips/tourist/%s", someOtherTouristID), token, nil)

	suite.Equal(http.StatusOK, w.Code)
	// Whatever id the tourist asked for, only their own trips come back.
	suite.mockTripService.AssertNotCalled(suite.T(), "ListTripsByTourist", mock.Anything, someOtherTouristID)
	suite.mockTripService.AssertExpectations(suite.T())
}

func (suite *TripHandlerTestSuite) TestListTripsByTourist_EmployeeSeesAnyTourist() {
	token := suite.generateTestToken(uuid.NewString(), string(domain.RoleEmployee))
	touristID := uuid.NewString()

	suite.mockTripService.On("ListTripsByTourist", mock.Anything, touristID).Return([]domain.Trip{}, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/trips/tourist/"+touristID, token, nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTripService.AssertExpectations(suite.T())
}

func TestTripHandlerSuite(t *testing.T) {
	suite.Run(t, new(TripHandlerTestSuite))
}
