package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a payment transaction.
// Direction of money movement is encoded here, not in the amount sign:
// Transaction.Amount is always the positive magnitude.
type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
	StatusRefunded  TransactionStatus = "REFUNDED"
)

// PaymentMethod is how a tourist paid.
type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "CREDIT_CARD"
	MethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	MethodPaypal       PaymentMethod = "PAYPAL"
	MethodCash         PaymentMethod = "CASH"
)

// Transaction is a ledger entry header recorded against a tourist.
// Every transaction's TouristID matches the tourist of every trip its
// details reference; that invariant is enforced by construction in the
// ledger service, not by a database constraint.
type Transaction struct {
	TransactionID   string            `json:"transactionID"`
	TransactionDate time.Time         `json:"transactionDate"`
	Amount          decimal.Decimal   `json:"amount"`
	Status          TransactionStatus `json:"status"`
	PaymentMethod   PaymentMethod     `json:"paymentMethod"`
	ReferenceNumber string            `json:"referenceNumber,omitempty"`
	Notes           string            `json:"notes,omitempty"`
	TouristID       string            `json:"touristID"`
	CreatedByID     string            `json:"createdByID"`
	AuditFields

	// Joined display fields, populated by the read facade.
	CreatedByFirstName string `json:"createdByFirstName,omitempty"`
	CreatedByLastName  string `json:"createdByLastName,omitempty"`
	TouristFirstName   string `json:"touristFirstName,omitempty"`
	TouristLastName    string `json:"touristLastName,omitempty"`

	Details []TransactionDetail `json:"details,omitempty"`
}

// TransactionDetail is a ledger entry line tying a transaction to a trip.
// Unlike the parent transaction, its amount may be negative (refund lines
// written on trip cancellation carry a negative sign).
type TransactionDetail struct {
	DetailID      string          `json:"detailID"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
	TransactionID string          `json:"transactionID"`
	TripID        *string         `json:"tripID,omitempty"`
	AuditFields

	// Joined display fields.
	TripName      string          `json:"tripName,omitempty"`
	TripPrice     decimal.Decimal `json:"tripPrice,omitempty"`
	PaymentMethod PaymentMethod   `json:"paymentMethod,omitempty"`
}
