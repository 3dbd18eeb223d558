package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
	portssvc "github.com/mlakumulu/travel_backend/internal/core/ports/services"
	"github.com/mlakumulu/travel_backend/internal/dto"
	"github.com/mlakumulu/travel_backend/internal/middleware"
)

// FeedbackService stores trip feedback tagged with classified sentiment.
type FeedbackService struct {
	feedbackRepo portsrepo.FeedbackRepositoryFacade
	tripRepo     portsrepo.TripRepositoryFacade
	touristRepo  portsrepo.TouristRepositoryFacade
	classifier   portssvc.SentimentClassifier
}

func NewFeedbackService(feedbackRepo portsrepo.FeedbackRepositoryFacade, tripRepo portsrepo.TripRepositoryFacade, touristRepo portsrepo.TouristRepositoryFacade, classifier portssvc.SentimentClassifier) *FeedbackService {
	return &FeedbackService{
		feedbackRepo: feedbackRepo,
		tripRepo:     tripRepo,
		touristRepo:  touristRepo,
		classifier:   classifier,
	}
}

// CreateFeedback stores feedback after verifying the trip and tourist exist.
// The comment is run through the sentiment classifier; the classifier's own
// fallback guarantees a label even when the external service is down.
func (s *FeedbackService) CreateFeedback(ctx context.Context, req dto.CreateFeedbackRequest) (*domain.Feedback, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.tripRepo.FindTripByID(ctx, req.TripID); err != nil {
		return nil, err
	}
	if _, err := s.touristRepo.FindTouristByID(ctx, req.TouristID); err != nil {
		return nil, err
	}

	sentiment, err := s.classifier.ClassifySentiment(ctx, req.Comment)
	if err != nil {
		logger.Warn("Sentiment classification failed, storing neutral", slog.String("error", err.Error()))
		sentiment = &domain.Sentiment{Type: domain.SentimentNeutral, Confidence: 0}
	}

	now := time.Now()
	feedback := domain.Feedback{
		FeedbackID:  uuid.NewString(),
		Rating:      req.Rating,
		Comment:     req.Comment,
		TripID:      req.TripID,
		TouristID:   req.TouristID,
		Sentiment:   sentiment,
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.feedbackRepo.SaveFeedback(ctx, feedback); err != nil {
		logger.Error("Failed to save feedback", slog.String("error", err.Error()), slog.String("feedback_id", feedback.FeedbackID))
		return nil, err
	}

	logger.Info("Feedback created", slog.String("feedback_id", feedback.FeedbackID), slog.String("trip_id", feedback.TripID), slog.String("sentiment", string(sentiment.Type)))
	return &feedback, nil
}

// GetFeedbackByID retrieves a feedback entry.
func (s *FeedbackService) GetFeedbackByID(ctx context.Context, feedbackID string) (*domain.Feedback, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	feedback, err := s.feedbackRepo.FindFeedbackByID(ctx, feedbackID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find feedback by ID", slog.String("error", err.Error()), slog.String("feedback_id", feedbackID))
		}
		return nil, err
	}
	return feedback, nil
}

// ListFeedbackByTrip retrieves all feedback for a trip.
func (s *FeedbackService) ListFeedbackByTrip(ctx context.Context, tripID string) ([]domain.Feedback, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	feedback, err := s.feedbackRepo.FindFeedbackByTripID(ctx, tripID)
	if err != nil {
		logger.Error("Failed to list feedback by trip", slog.String("error", err.Error()), slog.String("trip_id", tripID))
		return nil, err
	}
	if feedback == nil {
		return []domain.Feedback{}, nil
	}
	return feedback, nil
}

// ListFeedbackByTourist retrieves all feedback left by a tourist.
func (s *FeedbackService) ListFeedbackByTourist(ctx context.Context, touristID string) ([]domain.Feedback, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	feedback, err := s.feedbackRepo.FindFeedbackByTouristID(ctx, touristID)
	if err != nil {
		logger.Error("Failed to list feedback by tourist", slog.String("error", err.Error()), slog.String("tourist_id", touristID))
		return nil, err
	}
	if feedback == nil {
		return []domain.Feedback{}, nil
	}
	return feedback, nil
}
