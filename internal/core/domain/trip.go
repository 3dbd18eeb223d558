package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip is a booked journey owned by a tourist. Destination is a free-form
// JSON object (location, attractions, coordinates, ...).
type Trip struct {
	TripID        string          `json:"tripID"`
	Name          string          `json:"name"`
	StartDateTime time.Time       `json:"startDateTime"`
	EndDateTime   time.Time       `json:"endDateTime"`
	Destination   map[string]any  `json:"destination"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	TouristID     string          `json:"touristID"`
	AuditFields

	// Populated on joined reads.
	Tourist *Tourist `json:"tourist,omitempty"`
}

// DeletedTrip is the snapshot returned after a trip is removed.
type DeletedTrip struct {
	Trip
	DeletedAt time.Time `json:"deletedAt"`
}
