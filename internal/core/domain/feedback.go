package domain

// SentimentType is the classification label for a piece of feedback text.
type SentimentType string

const (
	SentimentPositive SentimentType = "POSITIVE"
	SentimentNeutral  SentimentType = "NEUTRAL"
	SentimentNegative SentimentType = "NEGATIVE"
)

// Sentiment is the classifier output stored alongside feedback.
type Sentiment struct {
	Type       SentimentType `json:"type"`
	Confidence float64       `json:"confidence"`
}

// Feedback is a tourist's rating and comment for a trip.
type Feedback struct {
	FeedbackID string     `json:"feedbackID"`
	Rating     int        `json:"rating"`
	Comment    string     `json:"comment"`
	TripID     string     `json:"tripID"`
	TouristID  string     `json:"touristID"`
	Sentiment  *Sentiment `json:"sentiment,omitempty"`
	AuditFields
}
