package repositories

import (
	"context"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email, for login and duplicate checks.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindEmployees retrieves all employee profiles with their users.
	FindEmployees(ctx context.Context) ([]domain.Employee, error)

	// FindEmployeeByUserID retrieves the employee profile for a user.
	FindEmployeeByUserID(ctx context.Context, userID string) (*domain.Employee, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user together with its role profile row
	// (employee or tourist) in one database transaction.
	SaveUser(ctx context.Context, user domain.User) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
