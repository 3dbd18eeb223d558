package services

import (
	"context"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
	"github.com/mlakumulu/travel_backend/internal/dto"
)

// UserSvcFacade defines user account and employee profile operations.
type UserSvcFacade interface {
	// CreateUser registers a new user with its role profile.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// Authenticate checks email/password credentials and returns the user.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)

	// ListEmployees retrieves all employee profiles.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// GetEmployeeByUserID retrieves the employee profile of a user account.
	GetEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error)
}

// TouristSvcFacade defines tourist profile operations.
type TouristSvcFacade interface {
	// ListTourists retrieves all tourist profiles.
	ListTourists(ctx context.Context) ([]domain.Tourist, error)

	// GetTouristByID retrieves a tourist profile.
	GetTouristByID(ctx context.Context, touristID string) (*domain.Tourist, error)

	// GetTouristByUserID retrieves a tourist profile by user account.
	GetTouristByUserID(ctx context.Context, userID string) (*domain.Tourist, error)

	// UpdateTourist updates a tourist's profile fields.
	UpdateTourist(ctx context.Context, touristID string, req dto.UpdateTouristRequest) (*domain.Tourist, error)
}
