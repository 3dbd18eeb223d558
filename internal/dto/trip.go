package dto

import (
	"time"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TransactionHint optionally overrides the generated defaults of a ledger
// entry synthesized during a trip mutation. Values are consumed verbatim.
type TransactionHint struct {
	PaymentMethod   string `json:"paymentMethod,omitempty"`
	ReferenceNumber string `json:"referenceNumber,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// CreateTripRequest defines the payload for booking a new trip.
type CreateTripRequest struct {
	Name          string           `json:"name" binding:"required"`
	StartDateTime time.Time        `json:"startDateTime" binding:"required"`
	EndDateTime   time.Time        `json:"endDateTime" binding:"required"`
	Destination   map[string]any   `json:"destination" binding:"required"`
	Description   string           `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	TouristID     string           `json:"touristID" binding:"required,uuid"`
	Transaction   *TransactionHint `json:"transaction,omitempty"`
}

// UpdateTripRequest defines the payload for updating a trip.
// Pointers distinguish omitted fields from zero values.
type UpdateTripRequest struct {
	Name          *string          `json:"name"`
	StartDateTime *time.Time       `json:"startDateTime"`
	EndDateTime   *time.Time       `json:"endDateTime"`
	Destination   map[string]any   `json:"destination"`
	Description   *string          `json:"description"`
	Price         *decimal.Decimal `json:"price"`
	Transaction   *TransactionHint `json:"transaction,omitempty"`
}

// TripResponse defines the data returned for a trip, together with the
// ledger transaction synthesized by the mutation, when one was.
type TripResponse struct {
	Trip        domain.Trip         `json:"trip"`
	Transaction *domain.Transaction `json:"transaction,omitempty"`
}

// DeleteTripResponse is the result bundle of a trip deletion.
type DeleteTripResponse struct {
	Message string              `json:"message"`
	Trip    domain.DeletedTrip  `json:"trip"`
	Refund  *domain.Transaction `json:"refund,omitempty"`
}

// ToTripResponse builds a TripResponse from a trip and an optional transaction.
func ToTripResponse(trip *domain.Trip, txn *domain.Transaction) TripResponse {
	return TripResponse{Trip: *trip, Transaction: txn}
}
