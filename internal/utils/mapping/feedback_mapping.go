package mapping

import (
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	"github.com/mlakumulu/travel_backend/internal/models"
)

// ToDomainFeedback converts a storage feedback row to the domain shape.
func ToDomainFeedback(m models.Feedback) domain.Feedback {
	f := domain.Feedback{
		FeedbackID: m.FeedbackID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		TripID:     m.TripID,
		TouristID:  m.TouristID,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
	if m.SentimentType != nil {
		confidence := 0.0
		if m.SentimentConfidence != nil {
			confidence = *m.SentimentConfidence
		}
		f.Sentiment = &domain.Sentiment{
			Type:       domain.SentimentType(*m.SentimentType),
			Confidence: confidence,
		}
	}
	return f
}

// ToModelFeedback converts a domain feedback to its storage shape.
func ToModelFeedback(f domain.Feedback) models.Feedback {
	m := models.Feedback{
		FeedbackID: f.FeedbackID,
		Rating:     f.Rating,
		Comment:    f.Comment,
		TripID:     f.TripID,
		TouristID:  f.TouristID,
		CreatedAt:  f.CreatedAt,
		UpdatedAt:  f.UpdatedAt,
	}
	if f.Sentiment != nil {
		sentimentType := string(f.Sentiment.Type)
		confidence := f.Sentiment.Confidence
		m.SentimentType = &sentimentType
		m.SentimentConfidence = &confidence
	}
	return m
}

// ToDomainFeedbackSlice converts a slice of storage feedback rows.
func ToDomainFeedbackSlice(ms []models.Feedback) []domain.Feedback {
	feedback := make([]domain.Feedback, len(ms))
	for i, m := range ms {
		feedback[i] = ToDomainFeedback(m)
	}
	return feedback
}
