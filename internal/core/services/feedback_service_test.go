package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
	portssvc "github.com/mlakumulu/travel_backend/internal/core/ports/services"
	"github.com/mlakumulu/travel_backend/internal/core/services"
	"github.com/mlakumulu/travel_backend/internal/dto"
)

// --- Mock FeedbackRepository ---
type MockFeedbackRepository struct {
	mock.Mock
}

var _ portsrepo.FeedbackRepositoryFacade = (*MockFeedbackRepository)(nil)

func (m *MockFeedbackRepository) FindFeedbackByID(ctx context.Context, feedbackID string) (*domain.Feedback, error) {
	args := m.Called(ctx, feedbackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindFeedbackByTripID(ctx context.Context, tripID string) ([]domain.Feedback, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) FindFeedbackByTouristID(ctx context.Context, touristID string) ([]domain.Feedback, error) {
	args := m.Called(ctx, touristID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}

func (m *MockFeedbackRepository) SaveFeedback(ctx context.Context, feedback domain.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

// --- Mock SentimentClassifier ---
type MockSentimentClassifier struct {
	mock.Mock
}

var _ portssvc.SentimentClassifier = (*MockSentimentClassifier)(nil)

func (m *MockSentimentClassifier) ClassifySentiment(ctx context.Context, text string) (*domain.Sentiment, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Sentiment), args.Error(1)
}

// --- Test Suite Setup ---
type FeedbackServiceTestSuite struct {
	suite.Suite
	mockFeedbackRepo *MockFeedbackRepository
	mockTripRepo     *MockTripRepository
	mockTouristRepo  *MockTouristRepository
	mockClassifier   *MockSentimentClassifier
	service          *services.FeedbackService
	trip             domain.Trip
	tourist          domain.Tourist
}

func (suite *FeedbackServiceTestSuite) SetupTest() {
	suite.mockFeedbackRepo = new(MockFeedbackRepository)
	suite.mockTripRepo = new(MockTripRepository)
	suite.mockTouristRepo = new(MockTouristRepository)
	suite.mockClassifier = new(MockSentimentClassifier)
	suite.service = services.NewFeedbackService(suite.mockFeedbackRepo, suite.mockTripRepo, suite.mockTouristRepo, suite.mockClassifier)
	suite.trip = domain.Trip{TripID: uuid.NewString(), Name: "Bali Getaway"}
	suite.tourist = domain.Tourist{TouristID: uuid.NewString()}
}

func (suite *FeedbackServiceTestSuite) createRequest() dto.CreateFeedbackRequest {
	return dto.CreateFeedbackRequest{
		Rating:    5,
		Comment:   "Amazing trip, loved every moment!",
		TripID:    suite.trip.TripID,
		TouristID: suite.tourist.TouristID,
	}
}

func (suite *FeedbackServiceTestSuite) TestCreateFeedback_TagsSentiment() {
	ctx := context.Background()
	req := suite.createRequest()
	sentiment := &domain.Sentiment{Type: domain.SentimentPositive, Confidence: 0.8}

	suite.mockTripRepo.On("FindTripByID", ctx, req.TripID).Return(&suite.trip, nil).Once()
	suite.mockTouristRepo.On("FindTouristByID", ctx, req.TouristID).Return(&suite.tourist, nil).Once()
	suite.mockClassifier.On("ClassifySentiment", ctx, req.Comment).Return(sentiment, nil).Once()

	var saved domain.Feedback
	suite.mockFeedbackRepo.On("SaveFeedback", ctx, mock.AnythingOfType("domain.Feedback")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Feedback)
	}).Return(nil).Once()

	feedback, err := suite.service.CreateFeedback(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(feedback.FeedbackID)
	suite.Equal(5, feedback.Rating)
	suite.Require().NotNil(saved.Sentiment)
	suite.Equal(domain.SentimentPositive, saved.Sentiment.Type)
	suite.InDelta(0.8, saved.Sentiment.Confidence, 0.001)
}

func (suite *FeedbackServiceTestSuite) TestCreateFeedback_ClassifierErrorDegradesToNeutral() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockTripRepo.On("FindTripByID", ctx, req.TripID).Return(&suite.trip, nil).Once()
	suite.mockTouristRepo.On("FindTouristByID", ctx, req.TouristID).Return(&suite.tourist, nil).Once()
	suite.mockClassifier.On("ClassifySentiment", ctx, req.Comment).Return(nil, errors.New("upstream timeout")).Once()
	suite.mockFeedbackRepo.On("SaveFeedback", ctx, mock.AnythingOfType("domain.Feedback")).Return(nil).Once()

	feedback, err := suite.service.CreateFeedback(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(feedback.Sentiment)
	suite.Equal(domain.SentimentNeutral, feedback.Sentiment.Type)
	suite.Zero(feedback.Sentiment.Confidence)
}

func (suite *FeedbackServiceTestSuite) TestCreateFeedback_MissingTrip() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockTripRepo.On("FindTripByID", ctx, req.TripID).Return(nil, apperrors.ErrNotFound).Once()

	feedback, err := suite.service.CreateFeedback(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(feedback)
	suite.mockFeedbackRepo.AssertNotCalled(suite.T(), "SaveFeedback", mock.Anything, mock.Anything)
}

func (suite *FeedbackServiceTestSuite) TestCreateFeedback_MissingTourist() {
	ctx := context.Background()
	req := suite.createRequest()

	suite.mockTripRepo.On("FindTripByID", ctx, req.TripID).Return(&suite.trip, nil).Once()
	suite.mockTouristRepo.On("FindTouristByID", ctx, req.TouristID).Return(nil, apperrors.ErrNotFound).Once()

	feedback, err := suite.service.CreateFeedback(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(feedback)
	suite.mockClassifier.AssertNotCalled(suite.T(), "ClassifySentiment", mock.Anything, mock.Anything)
}

func (suite *FeedbackServiceTestSuite) TestListFeedbackByTrip_NilBecomesEmpty() {
	ctx := context.Background()

	suite.mockFeedbackRepo.On("FindFeedbackByTripID", ctx, suite.trip.TripID).Return(nil, nil).Once()

	got, err := suite.service.ListFeedbackByTrip(ctx, suite.trip.TripID)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *FeedbackServiceTestSuite) TestGetFeedbackByID_NotFound() {
	ctx := context.Background()
	missingID := uuid.NewString()

	suite.mockFeedbackRepo.On("FindFeedbackByID", ctx, missingID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetFeedbackByID(ctx, missingID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(got)
}

func TestFeedbackService(t *testing.T) {
	suite.Run(t, new(FeedbackServiceTestSuite))
}
