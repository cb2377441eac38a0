package engine

import (
	"fmt"
	"math"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmortizationSchedule generates the ordered payment schedule for one
// loan. skipped holds the payment numbers marked as not made: a skipped
// payment applies no principal and its uncollected interest capitalizes
// into the carried balance, so every later payment accrues more. The
// schedule runs past the original term until the carried balance
// retires, which makes any skip cost strictly more interest than paying
// on time.
//
// When no payments are skipped, the final row's ending balance is forced
// to exactly zero, absorbing rounding remainder into the last payment.
func AmortizationSchedule(loan domain.Loan, skipped map[int]bool) (*domain.AmortizationSchedule, error) {
	if err := loan.Validate(); err != nil {
		return nil, err
	}
	n := loan.NumPayments()
	if n <= 0 {
		return nil, fmt.Errorf("%w: term of %d months yields no payments at %d payments per year",
			apperrors.ErrInvalidLoanParameters, loan.TermMonths, loan.PaymentsPerYear)
	}

	// Periodic rate r = annual_rate / 100 / payments_per_year.
	rate := loan.AnnualRate.Div(decimal.NewFromInt(int64(100 * loan.PaymentsPerYear)))
	payment := levelPayment(loan.Principal, rate, n)

	anySkipped := false
	for num, isSkipped := range skipped {
		if isSkipped && num >= 1 && num <= n {
			anySkipped = true
			break
		}
	}

	startMonth := domain.MonthOf(loan.StartDate)
	schedule := &domain.AmortizationSchedule{
		LoanID:        loan.LoanID,
		Payment:       payment,
		Payments:      make([]domain.LoanPayment, 0, n),
		TotalInterest: decimal.Zero,
		TotalPaid:     decimal.Zero,
	}

	balance := loan.Principal
	for i := 1; ; i++ {
		month := startMonth.AddMonths(i * 12 / loan.PaymentsPerYear)
		interest := balance.Mul(rate).Round(2)
		schedule.TotalInterest = schedule.TotalInterest.Add(interest)

		if skipped[i] {
			balance = balance.Add(interest)
			schedule.Payments = append(schedule.Payments, domain.LoanPayment{
				Number:        i,
				Month:         month,
				Payment:       decimal.Zero,
				Principal:     decimal.Zero,
				Interest:      interest,
				EndingBalance: balance,
				Skipped:       true,
			})
			continue
		}

		principal := payment.Sub(interest)
		paid := payment
		if i == n && !anySkipped {
			// Rounding absorption: retire the exact remaining balance.
			principal = balance
			paid = principal.Add(interest)
		} else if !principal.IsPositive() || principal.GreaterThanOrEqual(balance) {
			// Retire in one go when the remainder fits inside the level
			// payment, or when capitalized interest has outgrown it.
			principal = balance
			paid = principal.Add(interest)
		}
		balance = balance.Sub(principal)

		schedule.TotalPaid = schedule.TotalPaid.Add(paid)
		schedule.Payments = append(schedule.Payments, domain.LoanPayment{
			Number:        i,
			Month:         month,
			Payment:       paid,
			Principal:     principal,
			Interest:      interest,
			EndingBalance: balance,
		})
		if !balance.IsPositive() {
			return schedule, nil
		}
	}
}

// levelPayment computes the fixed per-period payment of an amortizing
// annuity: P*r / (1 - (1+r)^-n), or P/n for a zero-rate loan.
func levelPayment(principal, rate decimal.Decimal, n int) decimal.Decimal {
	nDec := decimal.NewFromInt(int64(n))
	if rate.IsZero() {
		return principal.Div(nDec).Round(2)
	}
	r, _ := rate.Float64()
	p, _ := principal.Float64()
	payment := p * r / (1 - math.Pow(1+r, float64(-n)))
	return decimal.NewFromFloat(payment).Round(2)
}

// LoanInterestForMonth sums interest accruing in one month across all
// loan schedules, including interest reported on skipped payments.
func LoanInterestForMonth(loans []domain.Loan, skippedFor func(loanID string) map[int]bool, month domain.Month) decimal.Decimal {
	total := decimal.Zero
	for _, loan := range loans {
		schedule, err := AmortizationSchedule(loan, skippedFor(loan.LoanID))
		if err != nil {
			// Invalid loans contribute nothing to aggregates.
			continue
		}
		for _, p := range schedule.Payments {
			if p.Month == month {
				total = total.Add(p.Interest)
			}
		}
	}
	return total
}
