package repositories

import (
	"context"

	"github.com/mlakumulu/travel_backend/internal/core/domain"
)

// LedgerWriter defines the write operations of the ledger record store.
type LedgerWriter interface {
	// SaveLedgerEntry persists a transaction and its detail line as a unit,
	// inside a single database transaction. Nothing wraps this together with
	// the trip mutation that triggered it; the two are deliberately
	// independent writes.
	SaveLedgerEntry(ctx context.Context, txn domain.Transaction, detail domain.TransactionDetail) error

	// DeleteDetailsByTripID removes every transaction detail referencing the
	// trip, across all parent transactions. Parent transactions are left in
	// place, possibly with zero remaining details.
	DeleteDetailsByTripID(ctx context.Context, tripID string) error
}

// LedgerReader defines reads used during ledger synthesis.
type LedgerReader interface {
	// FindDetailsByTripID retrieves details referencing a trip, with each
	// parent transaction's payment method joined in.
	FindDetailsByTripID(ctx context.Context, tripID string) ([]domain.TransactionDetail, error)
}

// TransactionReader defines the read facade over transactions.
type TransactionReader interface {
	// ListTransactions retrieves a paginated list of all transactions with
	// creator and tourist names joined, newest first.
	ListTransactions(ctx context.Context, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// FindTransactionByID retrieves a single transaction with joined names.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// FindTransactionsByTouristID retrieves all transactions for a tourist.
	FindTransactionsByTouristID(ctx context.Context, touristID string) ([]domain.Transaction, error)

	// FindTransactionsByTripID retrieves all transactions that have at least
	// one detail referencing the trip.
	FindTransactionsByTripID(ctx context.Context, tripID string) ([]domain.Transaction, error)

	// FindDetailsByTransactionID retrieves a transaction's details with trip
	// name and price joined in.
	FindDetailsByTransactionID(ctx context.Context, transactionID string) ([]domain.TransactionDetail, error)
}

// TransactionRepositoryFacade combines the ledger store and read facade.
type TransactionRepositoryFacade interface {
	LedgerWriter
	LedgerReader
	TransactionReader
}
