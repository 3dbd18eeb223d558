package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TripRepo:        NewTripRepository(dbPool),
		TransactionRepo: NewTransactionRepository(dbPool),
		UserRepo:        NewUserRepository(dbPool),
		TouristRepo:     NewTouristRepository(dbPool),
		FeedbackRepo:    NewFeedbackRepository(dbPool),
	}
}
