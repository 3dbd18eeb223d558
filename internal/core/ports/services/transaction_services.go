package services

import (
	"context"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
	"github.com/mlakumulu/travel_backend/internal/dto"
)

// TransactionSvcFacade is the read-only facade over the ledger for
// listing and detail views. Filter lookups on a missing tourist or trip
// return empty collections; direct id lookups miss with ErrNotFound.
type TransactionSvcFacade interface {
	// ListTransactions retrieves a page of transactions, newest first.
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// GetTransactionByID retrieves a transaction with its details.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByTourist retrieves a tourist's transactions; empty
	// when the tourist does not exist.
	ListTransactionsByTourist(ctx context.Context, touristID string) ([]domain.Transaction, error)

	// ListTransactionsByTrip retrieves transactions referencing a trip;
	// empty when the trip does not exist.
	ListTransactionsByTrip(ctx context.Context, tripID string) ([]domain.Transaction, error)

	// GetTransactionDetails retrieves the details of a transaction.
	GetTransactionDetails(ctx context.Context, transactionID string) ([]domain.TransactionDetail, error)
}
