package services

import (
	"context"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
	"github.com/mlakumulu/travel_backend/internal/dto"
)

// SentimentClassifier labels a piece of feedback text. Implementations call
// an external text-classification service.
type SentimentClassifier interface {
	// ClassifySentiment returns the sentiment label for the given text.
	ClassifySentiment(ctx context.Context, text string) (*domain.Sentiment, error)
}

// FeedbackSvcFacade defines feedback operations.
type FeedbackSvcFacade interface {
	// CreateFeedback stores feedback, tagging it with the classified
	// sentiment of its comment.
	CreateFeedback(ctx context.Context, req dto.CreateFeedbackRequest) (*domain.Feedback, error)

	// GetFeedbackByID retrieves a feedback entry.
	GetFeedbackByID(ctx context.Context, feedbackID string) (*domain.Feedback, error)

	// ListFeedbackByTrip retrieves all feedback for a trip.
	ListFeedbackByTrip(ctx context.Context, tripID string) ([]domain.Feedback, error)

	// ListFeedbackByTourist retrieves all feedback by a tourist.
	ListFeedbackByTourist(ctx context.Context, touristID string) ([]domain.Feedback, error)
}

// ReportSvcFacade generates per-tourist trip reports.
type ReportSvcFacade interface {
	// GenerateReport renders the tourist's trip history in the requested
	// format and returns the file written to the report directory.
	GenerateReport(ctx context.Context, touristID string, format dto.ReportFormat) (*dto.ReportFile, error)
}
