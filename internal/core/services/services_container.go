package services

import (
	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
	portssvc "github.com/mlakumulu/travel_backend/internal/core/ports/services"
	"github.com/mlakumulu/travel_backend/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The ledger service comes first since the trip service drives it.
	container.Ledger = NewLedgerService(repos.TransactionRepo)

	container.Trip = NewTripService(repos.TripRepo, repos.TouristRepo, container.Ledger)
	container.Transaction = NewTransactionService(repos.TransactionRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Tourist = NewTouristService(repos.TouristRepo)

	classifier := NewOpenRouterSentimentService(cfg.OpenRouterAPIKey, cfg.OpenRouterModel)
	container.Feedback = NewFeedbackService(repos.FeedbackRepo, repos.TripRepo, repos.TouristRepo, classifier)

	container.Report = NewReportService(repos.TouristRepo, repos.TripRepo, repos.FeedbackRepo, cfg.ReportTmpDir)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade      = (*LedgerService)(nil)
	_ portssvc.TripSvcFacade        = (*TripService)(nil)
	_ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
	_ portssvc.UserSvcFacade        = (*UserService)(nil)
	_ portssvc.TouristSvcFacade     = (*TouristService)(nil)
	_ portssvc.FeedbackSvcFacade    = (*FeedbackService)(nil)
	_ portssvc.ReportSvcFacade      = (*ReportService)(nil)
	_ portssvc.SentimentClassifier  = (*OpenRouterSentimentService)(nil)
)
