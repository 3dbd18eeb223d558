package dto

import "time"

// UpdateTouristRequest defines the payload for updating a tourist profile.
// Pointers distinguish omitted fields from zero values.
type UpdateTouristRequest struct {
	PassportNumber *string    `json:"passportNumber"`
	Nationality    *string    `json:"nationality"`
	DateOfBirth    *time.Time `json:"dateOfBirth"`
	PhoneNumber    *string    `json:"phoneNumber"`
	Address        *string    `json:"address"`
}
