package dto

// CreateFeedbackRequest defines the payload for leaving trip feedback.
type CreateFeedbackRequest struct {
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required"`
	TripID    string `json:"tripID" binding:"required,uuid"`
	TouristID string `json:"touristID" binding:"required,uuid"`
}
