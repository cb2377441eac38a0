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

type LoanServiceTestSuite struct {
	suite.Suite
	mockRepo *MockLoanRepository
	service  portssvc.LoanSvcFacade
}

func (suite *LoanServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockLoanRepository)
	suite.service = services.NewLoanService(suite.mockRepo)
}

func testLoan(loanID string) *domain.Loan {
	return &domain.Loan{
		LoanID:          loanID,
		Name:            "Equipment loan",
		Principal:       decimal.NewFromInt(12000),
		AnnualRate:      decimal.NewFromInt(6),
		TermMonths:      12,
		PaymentsPerYear: 12,
		StartDate:       time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *LoanServiceTestSuite) TestCreateLoan_Success() {
	ctx := context.Background()
	req := dto.CreateLoanRequest{
		Name:            "Equipment loan",
		Principal:       decimal.NewFromInt(12000),
		AnnualRate:      decimal.NewFromInt(6),
		TermMonths:      12,
		PaymentsPerYear: 12,
		StartDate:       time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}

	suite.mockRepo.On("SaveLoan", ctx, mock.MatchedBy(func(l domain.Loan) bool {
		return l.Name == req.Name && l.Principal.Equal(req.Principal) && l.LoanID != ""
	})).Return(nil).Once()

	loan, err := suite.service.CreateLoan(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(loan)
	suite.Equal(12, loan.NumPayments())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestCreateLoan_NoPaymentsInTerm() {
	ctx := context.Background()
	// 5 months at one payment per year truncates to zero payments.
	req := dto.CreateLoanRequest{
		Name:            "Degenerate",
		Principal:       decimal.NewFromInt(1000),
		AnnualRate:      decimal.NewFromInt(5),
		TermMonths:      5,
		PaymentsPerYear: 1,
		StartDate:       time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	loan, err := suite.service.CreateLoan(ctx, req)

	suite.Require().Error(err)
	suite.Nil(loan)
	suite.ErrorIs(err, apperrors.ErrInvalidLoanParameters)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveLoan", mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestSkipPayment_Success() {
	ctx := context.Background()
	loanID := uuid.NewString()

	suite.mockRepo.On("FindLoanByID", ctx, loanID).Return(testLoan(loanID), nil).Once()
	suite.mockRepo.On("SaveSkippedPayment", ctx, mock.MatchedBy(func(sp domain.SkippedPayment) bool {
		return sp.LoanID == loanID && sp.PaymentNumber == 3
	})).Return(nil).Once()

	err := suite.service.SkipPayment(ctx, loanID, 3)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *LoanServiceTestSuite) TestSkipPayment_OutOfRange() {
	ctx := context.Background()
	loanID := uuid.NewString()

	suite.mockRepo.On("FindLoanByID", ctx, loanID).Return(testLoan(loanID), nil).Twice()

	err := suite.service.SkipPayment(ctx, loanID, 0)
	suite.ErrorIs(err, apperrors.ErrValidation)

	err = suite.service.SkipPayment(ctx, loanID, 13)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockRepo.AssertNotCalled(suite.T(), "SaveSkippedPayment", mock.Anything, mock.Anything)
}

func (suite *LoanServiceTestSuite) TestUnskipPayment_NotFound() {
	ctx := context.Background()
	loanID := uuid.NewString()

	suite.mockRepo.On("DeleteSkippedPayment", ctx, loanID, 4).Return(apperrors.ErrNotFound).Once()

	err := suite.service.UnskipPayment(ctx, loanID, 4)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LoanServiceTestSuite) TestAmortizationSchedule_FiltersOtherLoansSkips() {
	ctx := context.Background()
	loanID := uuid.NewString()
	otherID := uuid.NewString()

	suite.mockRepo.On("FindLoanByID", ctx, loanID).Return(testLoan(loanID), nil).Once()
	suite.mockRepo.On("ListSkippedPayments", ctx).Return([]domain.SkippedPayment{
		{LoanID: loanID, PaymentNumber: 2},
		{LoanID: otherID, PaymentNumber: 5},
	}, nil).Once()

	schedule, err := suite.service.AmortizationSchedule(ctx, loanID)

	suite.Require().NoError(err)
	suite.Require().NotNil(schedule)
	// The skip extends the schedule past the original 12 payments.
	suite.Require().GreaterOrEqual(len(schedule.Payments), 13)
	suite.True(schedule.Payments[1].Skipped)
	suite.False(schedule.Payments[4].Skipped)
	suite.mockRepo.AssertExpectations(suite.T())
}

func TestLoanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LoanServiceTestSuite))
}
