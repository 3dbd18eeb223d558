package services

import (
	"context"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
	"github.com/mlakumulu/travel_backend/internal/dto"
)

// LedgerSvcFacade derives ledger entries from trip lifecycle events.
// These methods are invoked by the trip service, not exposed over HTTP.
type LedgerSvcFacade interface {
	// RecordBookingPayment writes the payment transaction and detail for a
	// freshly booked trip.
	RecordBookingPayment(ctx context.Context, trip domain.Trip, employeeID string, hint *dto.TransactionHint) (*domain.Transaction, error)

	// RecordPriceAdjustment writes the adjustment transaction for a price
	// change: REFUNDED for a decrease, COMPLETED for an increase, nothing
	// when the price is unchanged.
	RecordPriceAdjustment(ctx context.Context, before, after domain.Trip, employeeID string, hint *dto.TransactionHint) (*domain.Transaction, error)

	// RecordCancellationRefund writes the refund transaction for a trip
	// about to be deleted, reusing the payment method of the trip's prior
	// ledger entries when any exist.
	RecordCancellationRefund(ctx context.Context, trip domain.Trip, employeeID string) (*domain.Transaction, error)

	// RemoveTripDetails deletes every transaction detail referencing the
	// trip. Called before the trip row itself is removed.
	RemoveTripDetails(ctx context.Context, tripID string) error
}
