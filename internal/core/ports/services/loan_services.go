package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// LoanReaderSvc defines read operations for loans.
type LoanReaderSvc interface {
	// GetLoanByID retrieves a specific loan by its unique identifier.
	GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)

	// ListLoans retrieves all loans.
	ListLoans(ctx context.Context) ([]domain.Loan, error)
}

// LoanWriterSvc defines write operations for loans.
type LoanWriterSvc interface {
	// CreateLoan validates and persists a new loan.
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error)

	// UpdateLoan updates an existing loan's details.
	UpdateLoan(ctx context.Context, loanID string, req dto.UpdateLoanRequest) (*domain.Loan, error)

	// DeleteLoan removes a loan and its skipped-payment marks.
	DeleteLoan(ctx context.Context, loanID string) error

	// SkipPayment marks one payment number of a loan as skipped.
	SkipPayment(ctx context.Context, loanID string, paymentNumber int) error

	// UnskipPayment clears a skipped-payment mark.
	UnskipPayment(ctx context.Context, loanID string, paymentNumber int) error
}

// LoanCalculatorSvc defines calculation operations for loans.
type LoanCalculatorSvc interface {
	// AmortizationSchedule computes the full payment schedule for one loan,
	// honoring its skipped-payment marks.
	AmortizationSchedule(ctx context.Context, loanID string) (*domain.AmortizationSchedule, error)
}

// LoanSvcFacade combines all loan-related service interfaces.
type LoanSvcFacade interface {
	LoanReaderSvc
	LoanWriterSvc
	LoanCalculatorSvc
}
