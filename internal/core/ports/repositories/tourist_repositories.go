package repositories

import (
	"context"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
)

// TouristReader defines read operations for tourist profiles
type TouristReader interface {
	// FindTouristByID retrieves a specific tourist by ID, with their user joined.
	FindTouristByID(ctx context.Context, touristID string) (*domain.Tourist, error)

	// FindTouristByUserID retrieves the tourist profile for a user account.
	FindTouristByUserID(ctx context.Context, userID string) (*domain.Tourist, error)

	// FindTourists retrieves all tourist profiles with their users.
	FindTourists(ctx context.Context) ([]domain.Tourist, error)
}

// TouristWriter defines write operations for tourist profiles
type TouristWriter interface {
	// UpdateTourist updates a tourist's profile fields.
	UpdateTourist(ctx context.Context, tourist domain.Tourist) error
}

// TouristRepositoryFacade combines all tourist-related repository interfaces
type TouristRepositoryFacade interface {
	TouristReader
	TouristWriter
}
