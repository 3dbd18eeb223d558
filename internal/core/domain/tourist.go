package domain

import "time"

// Tourist is the customer profile attached to a TOURIST user.
type Tourist struct {
	TouristID      string     `json:"touristID"`
	UserID         string     `json:"userID"`
	PassportNumber string     `json:"passportNumber,omitempty"`
	Nationality    string     `json:"nationality,omitempty"`
	DateOfBirth    *time.Time `json:"dateOfBirth,omitempty"`
	PhoneNumber    string     `json:"phoneNumber,omitempty"`
	Address        string     `json:"address,omitempty"`

	// Populated on joined reads.
	User *User `json:"user,omitempty"`
}
