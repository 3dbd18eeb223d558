package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/mlakumulu/travel_backend/internal/apperrors"
	"github.com/mlakumulu/travel_backend/internal/core/domain"
	"github.com/mlakumulu/travel_backend/internal/core/services"
	"github.com/mlakumulu/travel_backend/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockRepo *MockTransactionRepository
	service  *services.TransactionService
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockTransactionRepository)
	suite.service = services.NewTransactionService(suite.mockRepo)
}

func (suite *TransactionServiceTestSuite) sampleTransaction() domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		Amount:        decimal.RequireFromString("1200.50"),
		Status:        domain.StatusCompleted,
		PaymentMethod: domain.MethodCreditCard,
		TouristID:     uuid.NewString(),
	}
}

func (suite *TransactionServiceTestSuite) TestListTransactions_DefaultLimit() {
	ctx := context.Background()
	txns := []domain.Transaction{suite.sampleTransaction()}
	token := "b3Bhc3VlCg=="

	suite.mockRepo.On("ListTransactions", ctx, 20, (*string)(nil)).Return(txns, token, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Transactions, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(token, *resp.NextToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_LimitClampedToMax() {
	ctx := context.Background()

	suite.mockRepo.On("ListTransactions", ctx, 100, (*string)(nil)).Return([]domain.Transaction{}, nil, nil).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{Limit: 500})

	suite.Require().NoError(err)
	suite.Empty(resp.Transactions)
	suite.Nil(resp.NextToken)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_TokenPassedThrough() {
	ctx := context.Background()
	token := "eyJvZmZzZXQiOjIwfQ=="

	suite.mockRepo.On("ListTransactions", ctx, 20, &token).Return([]domain.Transaction{}, nil, nil).Once()

	_, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{NextToken: &token})

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_LoadsDetails() {
	ctx := context.Background()
	txn := suite.sampleTransaction()
	details := []domain.TransactionDetail{
		{DetailID: uuid.NewString(), TransactionID: txn.TransactionID, Amount: txn.Amount},
	}

	suite.mockRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(&txn, nil).Once()
	suite.mockRepo.On("FindDetailsByTransactionID", ctx, txn.TransactionID).Return(details, nil).Once()

	got, err := suite.service.GetTransactionByID(ctx, txn.TransactionID)

	suite.Require().NoError(err)
	suite.Len(got.Details, 1)
	suite.Equal(txn.TransactionID, got.Details[0].TransactionID)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionByID_NotFound() {
	ctx := context.Background()
	missingID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, missingID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetTransactionByID(ctx, missingID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(got)
}

func (suite *TransactionServiceTestSuite) TestListTransactionsByTourist_EmptyForUnknownTourist() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockRepo.On("FindTransactionsByTouristID", ctx, unknownID).Return(nil, nil).Once()

	got, err := suite.service.ListTransactionsByTourist(ctx, unknownID)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *TransactionServiceTestSuite) TestListTransactionsByTrip_EmptyForUnknownTrip() {
	ctx := context.Background()
	unknownID := uuid.NewString()

	suite.mockRepo.On("FindTransactionsByTripID", ctx, unknownID).Return(nil, nil).Once()

	got, err := suite.service.ListTransactionsByTrip(ctx, unknownID)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionDetails_MissingTransactionIsNotFound() {
	ctx := context.Background()
	missingID := uuid.NewString()

	suite.mockRepo.On("FindTransactionByID", ctx, missingID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetTransactionDetails(ctx, missingID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(got)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindDetailsByTransactionID", ctx, missingID)
}

func (suite *TransactionServiceTestSuite) TestGetTransactionDetails_EmptyListForDetailLessTransaction() {
	ctx := context.Background()
	txn := suite.sampleTransaction()

	suite.mockRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(&txn, nil).Once()
	suite.mockRepo.On("FindDetailsByTransactionID", ctx, txn.TransactionID).Return(nil, nil).Once()

	got, err := suite.service.GetTransactionDetails(ctx, txn.TransactionID)

	suite.Require().NoError(err)
	suite.NotNil(got)
	suite.Empty(got)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_RepoErrorPropagates() {
	ctx := context.Background()
	repoErr := errors.New("connection reset")

	suite.mockRepo.On("ListTransactions", ctx, 20, (*string)(nil)).Return(nil, nil, repoErr).Once()

	resp, err := suite.service.ListTransactions(ctx, dto.ListTransactionsParams{})

	suite.Require().Error(err)
	suite.ErrorIs(err, repoErr)
	suite.Nil(resp)
}

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
