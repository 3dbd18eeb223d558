package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the storage shape of a ledger transaction row.
// Amount is always the positive magnitude; status carries direction.
type Transaction struct {
	TransactionID   string
	TransactionDate time.Time
	Amount          decimal.Decimal
	Status          string
	PaymentMethod   string
	ReferenceNumber string
	Notes           string
	TouristID       string
	CreatedByID     string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined columns from the facade queries; zero-valued elsewhere.
	CreatedByFirstName string
	CreatedByLastName  string
	TouristFirstName   string
	TouristLastName    string
}

// TransactionDetail is the storage shape of a ledger detail row.
// Amount is sign-bearing: cancellation refund lines are negative.
type TransactionDetail struct {
	DetailID      string
	Amount        decimal.Decimal
	Description   string
	TransactionID string
	TripID        *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined columns.
	TripName      string
	TripPrice     decimal.Decimal
	PaymentMethod string
}
