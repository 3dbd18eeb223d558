package models

import "time"

// Feedback is the storage shape of a feedback row, with the sentiment
// classification denormalized onto it.
type Feedback struct {
	FeedbackID          string
	Rating              int
	Comment             string
	TripID              string
	TouristID           string
	SentimentType       *string
	SentimentConfidence *float64
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
