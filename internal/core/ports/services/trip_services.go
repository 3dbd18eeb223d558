package services

import (
	"context"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
	"github.com/mlakumulu/travel_backend/internal/dto"
)

// TripReaderSvc defines read operations for trips.
type TripReaderSvc interface {
	// ListTrips retrieves all trips.
	ListTrips(ctx context.Context) ([]domain.Trip, error)

	// GetTripByID retrieves a specific trip.
	GetTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTripsByTourist retrieves all trips owned by a tourist.
	ListTripsByTourist(ctx context.Context, touristID string) ([]domain.Trip, error)

	// ListTripsByTouristUser resolves a user account to its tourist profile
	// and returns that tourist's trips.
	ListTripsByTouristUser(ctx context.Context, userID string) ([]domain.Trip, error)
}

// TripWriterSvc defines the trip lifecycle operations. The optional
// actingEmployeeID gates billing: when present, the mutation also writes
// ledger entries; when nil, only the trip row changes.
type TripWriterSvc interface {
	// CreateTrip books a trip and, when an employee is acting, records the
	// payment transaction for it.
	CreateTrip(ctx context.Context, req dto.CreateTripRequest, actingEmployeeID *string) (*domain.Trip, *domain.Transaction, error)

	// UpdateTrip updates a trip and, when an employee is acting and the
	// price changed, records the adjustment transaction.
	UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest, actingEmployeeID *string) (*domain.Trip, *domain.Transaction, error)

	// DeleteTrip removes a trip after synthesizing a refund when applicable,
	// returning the deletion summary.
	DeleteTrip(ctx context.Context, tripID string, actingEmployeeID *string) (*dto.DeleteTripResponse, error)
}

// TripSvcFacade combines trip read and lifecycle operations.
type TripSvcFacade interface {
	TripReaderSvc
	TripWriterSvc
}
