package repositories

import (
	"context"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
)

// FeedbackReader defines read operations for feedback data
type FeedbackReader interface {
	// FindFeedbackByID retrieves a specific feedback entry.
	FindFeedbackByID(ctx context.Context, feedbackID string) (*domain.Feedback, error)

	// FindFeedbackByTripID retrieves all feedback left for a trip.
	FindFeedbackByTripID(ctx context.Context, tripID string) ([]domain.Feedback, error)

	// FindFeedbackByTouristID retrieves all feedback left by a tourist.
	FindFeedbackByTouristID(ctx context.Context, touristID string) ([]domain.Feedback, error)
}

// FeedbackWriter defines write operations for feedback data
type FeedbackWriter interface {
	// SaveFeedback persists a new feedback entry with its sentiment tag.
	SaveFeedback(ctx context.Context, feedback domain.Feedback) error
}

// FeedbackRepositoryFacade combines all feedback-related repository interfaces
type FeedbackRepositoryFacade interface {
	FeedbackReader
	FeedbackWriter
}
