package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
	portssvc "github.com/mlakumulu/travel_backend/internal/core/ports/services"
	"github.com/mlakumulu/travel_backend/internal/dto"
	"github.com/mlakumulu/travel_backend/internal/middleware"
)

// TripService owns the trip lifecycle and sequences ledger synthesis at the
// three billing points (create, price change, delete). The trip mutation and
// the ledger write are independent: a synthesis failure does not roll back
// the trip change, it surfaces as the operation's error.
type TripService struct {
	tripRepo    portsrepo.TripRepositoryFacade
	touristRepo portsrepo.TouristRepositoryFacade
	ledgerSvc   portssvc.LedgerSvcFacade
}

func NewTripService(tripRepo portsrepo.TripRepositoryFacade, touristRepo portsrepo.TouristRepositoryFacade, ledgerSvc portssvc.LedgerSvcFacade) *TripService {
	return &TripService{
		tripRepo:    tripRepo,
		touristRepo: touristRepo,
		ledgerSvc:   ledgerSvc,
	}
}

// ListTrips retrieves all trips.
func (s *TripService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	trips, err := s.tripRepo.FindTrips(ctx)
	if err != nil {
		logger.Error("Failed to list trips from repository", slog.String("error", err.Error()))
		return nil, err
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// GetTripByID retrieves a specific trip.
func (s *TripService) GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find trip by ID", slog.String("error", err.Error()), slog.String("trip_id", tripID))
		}
		return nil, err
	}
	return trip, nil
}

// ListTripsByTourist retrieves all trips owned by a tourist. A missing
// tourist yields an empty list, not an error.
func (s *TripService) ListTripsByTourist(ctx context.Context, touristID string) ([]domain.Trip, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	trips, err := s.tripRepo.FindTripsByTouristID(ctx, touristID)
	if err != nil {
		logger.Error("Failed to list trips by tourist", slog.String("error", err.Error()), slog.String("tourist_id", touristID))
		return nil, err
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// ListTripsByTouristUser resolves a user account to its tourist profile and
// returns that tourist's trips. A user without a tourist profile misses with
// ErrNotFound.
func (s *TripService) ListTripsByTouristUser(ctx context.Context, userID string) ([]domain.Trip, error) {
	tourist, err := s.touristRepo.FindTouristByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.ListTripsByTourist(ctx, tourist.TouristID)
}

// CreateTrip books a trip and, when an employee is acting, records the
// payment transaction for it. Tourist self-bookings persist only the trip.
func (s *TripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest, actingEmployeeID *string) (*domain.Trip, *domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.touristRepo.FindTouristByID(ctx, req.TouristID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to verify tourist for trip creation", slog.String("error", err.Error()), slog.String("tourist_id", req.TouristID))
		}
		return nil, nil, err
	}

	price := decimal.Zero
	if req.Price != nil {
		price = *req.Price
	}

	now := time.Now()
	trip := domain.Trip{
		TripID:        uuid.NewString(),
		Name:          req.Name,
		StartDateTime: req.StartDateTime,
		EndDateTime:   req.EndDateTime,
		Destination:   req.Destination,
		Description:   req.Description,
		Price:         price,
		TouristID:     req.TouristID,
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		logger.Error("Failed to save trip", slog.String("error", err.Error()), slog.String("trip_id", trip.TripID))
		return nil, nil, err
	}
	logger.Info("Trip created", slog.String("trip_id", trip.TripID), slog.String("tourist_id", trip.TouristID))

	var txn *domain.Transaction
	if actingEmployeeID != nil {
		var err error
		txn, err = s.ledgerSvc.RecordBookingPayment(ctx, trip, *actingEmployeeID, req.Transaction)
		if err != nil {
			// The trip itself stays persisted; the missing ledger entry is
			// left for reconciliation.
			return nil, nil, err
		}
	}

	return &trip, txn, nil
}

// UpdateTrip updates a trip's fields. When an employee is acting and the
// price changed, the price delta is recorded as an adjustment transaction.
func (s *TripService) UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, actingEmployeeID *string) (*domain.Trip, *domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	before, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find trip for update", slog.String("error", err.Error()), slog.String("trip_id", tripID))
		}
		return nil, nil, err
	}

	after := *before
	if req.Name != nil {
		after.Name = *req.Name
	}
	if req.StartDateTime != nil {
		after.StartDateTime = *req.StartDateTime
	}
	if req.EndDateTime != nil {
		after.EndDateTime = *req.EndDateTime
	}
	if req.Destination != nil {
		after.Destination = req.Destination
	}
	if req.Description != nil {
		after.Description = *req.Description
	}
	if req.Price != nil {
		after.Price = *req.Price
	}
	after.UpdatedAt = time.Now()

	if err := s.tripRepo.UpdateTrip(ctx, after); err != nil {
		logger.Error("Failed to update trip", slog.String("error", err.Error()), slog.String("trip_id", tripID))
		return nil, nil, err
	}
	logger.Info("Trip updated", slog.String("trip_id", tripID))

	var txn *domain.Transaction
	if actingEmployeeID != nil && req.Price != nil {
		txn, err = s.ledgerSvc.RecordPriceAdjustment(ctx, *before, after, *actingEmployeeID, req.Transaction)
		if err != nil {
			return nil, nil, err
		}
	}

	return &after, txn, nil
}

// DeleteTrip removes a trip. When an employee is acting and the trip has a
// positive price, a refund transaction is synthesized first. The trip's
// transaction details are deleted in every case, even when no refund was
// written; parent transactions stay behind.
func (s *TripService) DeleteTrip(ctx context.Context, tripID string, actingEmployeeID *string) (*dto.DeleteTripResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find trip for deletion", slog.String("error", err.Error()), slog.String("trip_id", tripID))
		}
		return nil, err
	}

	var refund *domain.Transaction
	if actingEmployeeID != nil {
		refund, err = s.ledgerSvc.RecordCancellationRefund(ctx, *trip, *actingEmployeeID)
		if err != nil {
			return nil, err
		}
	}

	if err := s.ledgerSvc.RemoveTripDetails(ctx, tripID); err != nil {
		return nil, err
	}

	if err := s.tripRepo.DeleteTrip(ctx, tripID); err != nil {
		logger.Error("Failed to delete trip", slog.String("error", err.Error()), slog.String("trip_id", tripID))
		return nil, err
	}
	logger.Info("Trip deleted", slog.String("trip_id", tripID), slog.Bool("refunded", refund != nil))

	return &dto.DeleteTripResponse{
		Message: "Trip deleted successfully",
		Trip:    domain.DeletedTrip{Trip: *trip, DeletedAt: time.Now()},
		Refund:  refund,
	}, nil
}
