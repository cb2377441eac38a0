package domain

import (
	"fmt"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Loan is an amortizing loan with level periodic payments.
type Loan struct {
	LoanID          string          `json:"loanID"`
	Name            string          `json:"name"`
	Principal       decimal.Decimal `json:"principal"`
	AnnualRate      decimal.Decimal `json:"annualRate"` // percent, e.g. 12 for 12%
	TermMonths      int             `json:"termMonths"`
	PaymentsPerYear int             `json:"paymentsPerYear"`
	StartDate       time.Time       `json:"startDate"`
	Notes           string          `json:"notes"`
	AuditFields
}

// Validate enforces the schedule-generation preconditions.
func (l Loan) Validate() error {
	if l.AnnualRate.IsNegative() {
		return fmt.Errorf("%w: annual rate cannot be negative", apperrors.ErrInvalidLoanParameters)
	}
	if l.TermMonths <= 0 {
		return fmt.Errorf("%w: term months must be positive", apperrors.ErrInvalidLoanParameters)
	}
	if l.PaymentsPerYear <= 0 {
		return fmt.Errorf("%w: payments per year must be positive", apperrors.ErrInvalidLoanParameters)
	}
	if l.Principal.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: principal must be positive", apperrors.ErrInvalidLoanParameters)
	}
	return nil
}

// NumPayments is the total number of scheduled payments over the term.
func (l Loan) NumPayments() int {
	return l.TermMonths * l.PaymentsPerYear / 12
}

// SkippedPayment marks one scheduled loan payment as not made.
type SkippedPayment struct {
	LoanID        string `json:"loanID"`
	PaymentNumber int    `json:"paymentNumber"`
	AuditFields
}
