package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TripRepo        TripRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	UserRepo        UserRepositoryFacade
	TouristRepo     TouristRepositoryFacade
	FeedbackRepo    FeedbackRepositoryFacade
}
