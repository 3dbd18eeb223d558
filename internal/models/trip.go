package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip is the storage shape of a trip row. Destination is stored as jsonb
// and surfaces here as raw bytes; mapping decodes it for the domain type.
type Trip struct {
	TripID        string
	Name          string
	StartDateTime time.Time
	EndDateTime   time.Time
	Destination   []byte
	Description   string
	Price         decimal.Decimal
	TouristID     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
