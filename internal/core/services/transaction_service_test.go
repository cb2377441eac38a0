package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/core/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo      *MockTransactionRepository
	mockCategoryRepo *MockCategoryRepository
	service          portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCategoryRepo = new(MockCategoryRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockCategoryRepo)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		EntryDate:       time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		CategoryID:      categoryID,
		Amount:          decimal.NewFromInt(250),
		TransactionType: domain.Payable,
		Status:          domain.StatusPaid,
		MonthPaid:       "2024-03",
		Notes:           "office chairs",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&domain.Category{CategoryID: categoryID, Name: "Office"}, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.CategoryID == categoryID &&
			txn.Amount.Equal(req.Amount) &&
			txn.MonthPaid.String() == "2024-03" &&
			txn.TransactionID != ""
	})).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(categoryID, txn.CategoryID)
	suite.Equal(domain.StatusPaid, txn.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockCategoryRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_CategoryNotFound() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		EntryDate:       time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		CategoryID:      "missing",
		Amount:          decimal.NewFromInt(100),
		TransactionType: domain.Payable,
		Status:          domain.StatusPending,
		MonthDue:        "2024-04",
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_SettledWithoutMonthFails() {
	ctx := context.Background()
	categoryID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		EntryDate:       time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		CategoryID:      categoryID,
		Amount:          decimal.NewFromInt(100),
		TransactionType: domain.Payable,
		Status:          domain.StatusPaid,
		// MonthPaid intentionally absent
	}

	suite.mockCategoryRepo.On("FindCategoryByID", ctx, categoryID).
		Return(&domain.Category{CategoryID: categoryID}, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.Nil(txn)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_MergesProvidedFields() {
	ctx := context.Background()
	txnID := uuid.NewString()
	existing := &domain.Transaction{
		TransactionID:   txnID,
		EntryDate:       time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		CategoryID:      "cat-1",
		Amount:          decimal.NewFromInt(100),
		TransactionType: domain.Payable,
		Status:          domain.StatusPending,
		MonthDue:        domain.MonthOf(time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)),
		Notes:           "original",
	}
	newAmount := decimal.NewFromInt(175)
	newStatus := domain.StatusPaid
	newMonthPaid := "2024-04"

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txnID).Return(existing, nil).Once()
	suite.mockTxnRepo.On("UpdateTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Amount.Equal(newAmount) &&
			txn.Status == domain.StatusPaid &&
			txn.MonthPaid.String() == "2024-04" &&
			txn.Notes == "original" // untouched
	})).Return(nil).Once()

	req := dto.UpdateTransactionRequest{
		Amount:    &newAmount,
		Status:    &newStatus,
		MonthPaid: &newMonthPaid,
	}
	txn, err := suite.service.UpdateTransaction(ctx, txnID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.True(txn.Amount.Equal(newAmount))
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestListTransactions_EmptyNotNil() {
	ctx := context.Background()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()

	txns, err := suite.service.ListTransactions(ctx)

	suite.Require().NoError(err)
	suite.NotNil(txns)
	suite.Empty(txns)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	suite.mockTxnRepo.On("DeleteTransaction", ctx, "missing").Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
