package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// LoanRepository defines persistence operations for loans and their
// skipped-payment marks.
type LoanRepository interface {
	SaveLoan(ctx context.Context, loan domain.Loan) error
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)
	ListLoans(ctx context.Context) ([]domain.Loan, error)
	UpdateLoan(ctx context.Context, loan domain.Loan) error
	DeleteLoan(ctx context.Context, loanID string) error

	SaveSkippedPayment(ctx context.Context, skipped domain.SkippedPayment) error
	DeleteSkippedPayment(ctx context.Context, loanID string, paymentNumber int) error
	ListSkippedPayments(ctx context.Context) ([]domain.SkippedPayment, error)
}
