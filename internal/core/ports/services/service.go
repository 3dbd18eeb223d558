package services

// ServiceContainer holds all service facades for handler registration.
type ServiceContainer struct {
	Trip        TripSvcFacade
	Ledger      LedgerSvcFacade
	Transaction TransactionSvcFacade
	User        UserSvcFacade
	Tourist     TouristSvcFacade
	Feedback    FeedbackSvcFacade
	Report      ReportSvcFacade
}
