package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
	"github.com/mlakumulu/travel_backend/internal/dto"
	"github.com/mlakumulu/travel_backend/internal/middleware"
	"github.com/mlakumulu/travel_backend/internal/utils"
)

// LedgerService derives ledger entries from trip lifecycle events. Each
// synthesized transaction+detail pair is persisted as one unit, but nothing
// ties it to the trip mutation that triggered it: a failed synthesis leaves
// the trip change in place and surfaces the error to the caller.
type LedgerService struct {
	ledgerRepo portsrepo.TransactionRepositoryFacade
}

func NewLedgerService(ledgerRepo portsrepo.TransactionRepositoryFacade) *LedgerService {
	return &LedgerService{ledgerRepo: ledgerRepo}
}

// resolvePaymentMethod picks the hinted payment method, falling back to
// credit card when the hint carries none.
func resolvePaymentMethod(hint *dto.TransactionHint) domain.PaymentMethod {
	if hint != nil && hint.PaymentMethod != "" {
		return domain.PaymentMethod(hint.PaymentMethod)
	}
	return domain.MethodCreditCard
}

func resolveReferenceNumber(hint *dto.TransactionHint) string {
	if hint != nil && hint.ReferenceNumber != "" {
		return hint.ReferenceNumber
	}
	return utils.NewReferenceNumber()
}

func resolveNotes(hint *dto.TransactionHint, generated string) string {
	if hint != nil && hint.Notes != "" {
		return hint.Notes
	}
	return generated
}

// RecordBookingPayment writes the payment transaction for a freshly booked
// trip. The caller has already verified an employee is acting.
func (s *LedgerService) RecordBookingPayment(ctx context.Context, trip domain.Trip, employeeID string, hint *dto.TransactionHint) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		TransactionDate: now,
		Amount:          trip.Price,
		Status:          domain.StatusCompleted,
		PaymentMethod:   resolvePaymentMethod(hint),
		ReferenceNumber: resolveReferenceNumber(hint),
		Notes:           resolveNotes(hint, fmt.Sprintf("Payment for trip: %s", trip.Name)),
		TouristID:       trip.TouristID,
		CreatedByID:     employeeID,
		AuditFields:     domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	detail := domain.TransactionDetail{
		DetailID:      uuid.NewString(),
		Amount:        trip.Price,
		Description:   fmt.Sprintf("Payment for %s to %s", trip.Name, utils.SummarizeDestination(trip.Destination)),
		TransactionID: txn.TransactionID,
		TripID:        &trip.TripID,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.ledgerRepo.SaveLedgerEntry(ctx, txn, detail); err != nil {
		logger.Error("Failed to record booking payment", slog.String("error", err.Error()), slog.String("trip_id", trip.TripID))
		return nil, err
	}

	txn.Details = []domain.TransactionDetail{detail}
	logger.Info("Booking payment recorded", slog.String("transaction_id", txn.TransactionID), slog.String("trip_id", trip.TripID))
	return &txn, nil
}

// RecordPriceAdjustment writes the adjustment transaction for a price change.
// A decrease is recorded as REFUNDED, an increase as COMPLETED, and an
// unchanged price records nothing.
func (s *LedgerService) RecordPriceAdjustment(ctx context.Context, before, after domain.Trip, employeeID string, hint *dto.TransactionHint) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	delta := after.Price.Sub(before.Price)
	if delta.IsZero() {
		return nil, nil
	}
	isRefund := delta.IsNegative()
	magnitude := delta.Abs()

	status := domain.StatusCompleted
	notes := fmt.Sprintf("Additional payment due to price adjustment for trip: %s", after.Name)
	description := fmt.Sprintf("Additional payment due to price adjustment for %s to %s", after.Name, utils.SummarizeDestination(after.Destination))
	if isRefund {
		status = domain.StatusRefunded
		notes = fmt.Sprintf("Refund due to price adjustment for trip: %s", after.Name)
		description = fmt.Sprintf("Refund due to price adjustment for %s to %s", after.Name, utils.SummarizeDestination(after.Destination))
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		TransactionDate: now,
		Amount:          magnitude,
		Status:          status,
		PaymentMethod:   resolvePaymentMethod(hint),
		ReferenceNumber: resolveReferenceNumber(hint),
		Notes:           resolveNotes(hint, notes),
		TouristID:       after.TouristID,
		CreatedByID:     employeeID,
		AuditFields:     domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	detail := domain.TransactionDetail{
		DetailID:      uuid.NewString(),
		Amount:        magnitude,
		Description:   description,
		TransactionID: txn.TransactionID,
		TripID:        &after.TripID,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.ledgerRepo.SaveLedgerEntry(ctx, txn, detail); err != nil {
		logger.Error("Failed to record price adjustment", slog.String("error", err.Error()), slog.String("trip_id", after.TripID))
		return nil, err
	}

	txn.Details = []domain.TransactionDetail{detail}
	logger.Info("Price adjustment recorded", slog.String("transaction_id", txn.TransactionID), slog.String("trip_id", after.TripID), slog.Bool("refund", isRefund))
	return &txn, nil
}

// RecordCancellationRefund writes the refund transaction for a trip about to
// be deleted. The refund reuses the payment method of the trip's prior
// ledger entries when any exist; trips with a zero price record nothing.
// The detail line carries a negative amount: of all ledger lines, only
// cancellation refunds are sign-bearing at the detail level.
func (s *LedgerService) RecordCancellationRefund(ctx context.Context, trip domain.Trip, employeeID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.ledgerRepo.FindDetailsByTripID(ctx, trip.TripID)
	if err != nil {
		logger.Error("Failed to look up existing details for refund", slog.String("error", err.Error()), slog.String("trip_id", trip.TripID))
		return nil, err
	}

	if !trip.Price.IsPositive() {
		return nil, nil
	}

	method := domain.MethodCreditCard
	if len(existing) > 0 && existing[0].PaymentMethod != "" {
		method = existing[0].PaymentMethod
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		TransactionDate: now,
		Amount:          trip.Price,
		Status:          domain.StatusRefunded,
		PaymentMethod:   method,
		ReferenceNumber: utils.NewReferenceNumber(),
		Notes:           fmt.Sprintf("Refund for cancelled trip: %s", trip.Name),
		TouristID:       trip.TouristID,
		CreatedByID:     employeeID,
		AuditFields:     domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	detail := domain.TransactionDetail{
		DetailID:      uuid.NewString(),
		Amount:        trip.Price.Neg(),
		Description:   fmt.Sprintf("Refund for cancelled trip: %s to %s", trip.Name, utils.SummarizeDestination(trip.Destination)),
		TransactionID: txn.TransactionID,
		TripID:        &trip.TripID,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.ledgerRepo.SaveLedgerEntry(ctx, txn, detail); err != nil {
		logger.Error("Failed to record cancellation refund", slog.String("error", err.Error()), slog.String("trip_id", trip.TripID))
		return nil, err
	}

	txn.Details = []domain.TransactionDetail{detail}
	logger.Info("Cancellation refund recorded", slog.String("transaction_id", txn.TransactionID), slog.String("trip_id", trip.TripID))
	return &txn, nil
}

// RemoveTripDetails deletes every transaction detail referencing the trip,
// across all parent transactions. Parent transactions stay in place.
func (s *LedgerService) RemoveTripDetails(ctx context.Context, tripID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.ledgerRepo.DeleteDetailsByTripID(ctx, tripID); err != nil {
		logger.Error("Failed to delete trip details", slog.String("error", err.Error()), slog.String("trip_id", tripID))
		return err
	}
	return nil
}
