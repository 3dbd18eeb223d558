package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	portsrepo "github.com/mlakumulu/travel_backend/internal/core/ports/repositories"
	"github.com/mlakumulu/travel_backend/internal/dto"
	"github.com/mlakumulu/travel_backend/internal/middleware"
)

const (
	defaultTransactionPageSize = 20
	maxTransactionPageSize     = 100
)

// TransactionService is the read-only facade over the ledger. Filtered
// listings on a missing tourist or trip come back empty; direct id lookups
// miss with ErrNotFound.
type TransactionService struct {
	txnRepo portsrepo.TransactionRepositoryFacade
}

func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade) *TransactionService {
	return &TransactionService{txnRepo: txnRepo}
}

// ListTransactions retrieves a page of transactions, newest first.
func (s *TransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = defaultTransactionPageSize
	}
	if limit > maxTransactionPageSize {
		limit = maxTransactionPageSize
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		return nil, err
	}
	if txns == nil {
		txns = []domain.Transaction{}
	}

	return &dto.ListTransactionsResponse{Transactions: txns, NextToken: nextToken}, nil
}

// GetTransactionByID retrieves a transaction together with its details.
func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find transaction by ID", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	details, err := s.txnRepo.FindDetailsByTransactionID(ctx, transactionID)
	if err != nil {
		logger.Error("Failed to load transaction details", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}
	txn.Details = details

	return txn, nil
}

// ListTransactionsByTourist retrieves a tourist's transactions. An unknown
// tourist id simply matches nothing.
func (s *TransactionService) ListTransactionsByTourist(ctx context.Context, touristID string) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txns, err := s.txnRepo.FindTransactionsByTouristID(ctx, touristID)
	if err != nil {
		logger.Error("Failed to list transactions by tourist", slog.String("error", err.Error()), slog.String("tourist_id", touristID))
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// ListTransactionsByTrip retrieves the transactions that have at least one
// detail referencing the trip. An unknown trip id matches nothing.
func (s *TransactionService) ListTransactionsByTrip(ctx context.Context, tripID string) ([]domain.Transaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txns, err := s.txnRepo.FindTransactionsByTripID(ctx, tripID)
	if err != nil {
		logger.Error("Failed to list transactions by trip", slog.String("error", err.Error()), slog.String("trip_id", tripID))
		return nil, err
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

// GetTransactionDetails retrieves the details of a transaction, verifying
// the transaction exists first so a miss surfaces as ErrNotFound rather
// than an empty list.
func (s *TransactionService) GetTransactionDetails(ctx context.Context, transactionID string) ([]domain.TransactionDetail, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.txnRepo.FindTransactionByID(ctx, transactionID); err != nil {
		return nil, err
	}

	details, err := s.txnRepo.FindDetailsByTransactionID(ctx, transactionID)
	if err != nil {
		logger.Error("Failed to load transaction details", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		return nil, err
	}
	if details == nil {
		return []domain.TransactionDetail{}, nil
	}
	return details, nil
}
