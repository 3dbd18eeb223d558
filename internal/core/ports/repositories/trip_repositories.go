package repositories

import (
	"context"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
)

// TripReader defines read operations for trip data
type TripReader interface {
	// FindTripByID retrieves a specific trip by its unique identifier.
	FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// FindTrips retrieves all trips with their owning tourist and user joined in.
	FindTrips(ctx context.Context) ([]domain.Trip, error)

	// FindTripsByTouristID retrieves all trips owned by a tourist.
	FindTripsByTouristID(ctx context.Context, touristID string) ([]domain.Trip, error)
}

// TripWriter defines write operations for trip data
type TripWriter interface {
	// SaveTrip persists a new trip.
	SaveTrip(ctx context.Context, trip domain.Trip) error

	// UpdateTrip updates an existing trip's details.
	UpdateTrip(ctx context.Context, trip domain.Trip) error

	// DeleteTrip removes a trip row. Referencing transaction details must be
	// removed by the caller first; the schema declares no cascade.
	DeleteTrip(ctx context.Context, tripID string) error
}

// TripRepositoryFacade combines all trip-related repository interfaces
type TripRepositoryFacade interface {
	TripReader
	TripWriter
}
