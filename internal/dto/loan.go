package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to record a loan.
type CreateLoanRequest struct {
	Name            string          `json:"name" binding:"required"`
	Principal       decimal.Decimal `json:"principal" binding:"required"`
	AnnualRate      decimal.Decimal `json:"annualRate"`
	TermMonths      int             `json:"termMonths" binding:"required,gt=0"`
	PaymentsPerYear int             `json:"paymentsPerYear" binding:"required,gt=0"`
	StartDate       time.Time       `json:"startDate" binding:"required"`
	Notes           string          `json:"notes"`
}

// UpdateLoanRequest defines the fields allowed when editing a loan.
type UpdateLoanRequest struct {
	Name            *string          `json:"name"`
	Principal       *decimal.Decimal `json:"principal"`
	AnnualRate      *decimal.Decimal `json:"annualRate"`
	TermMonths      *int             `json:"termMonths" binding:"omitempty,gt=0"`
	PaymentsPerYear *int             `json:"paymentsPerYear" binding:"omitempty,gt=0"`
	StartDate       *time.Time       `json:"startDate"`
	Notes           *string          `json:"notes"`
}

// LoanResponse defines the data returned for a loan.
type LoanResponse struct {
	LoanID          string          `json:"loanID"`
	Name            string          `json:"name"`
	Principal       decimal.Decimal `json:"principal"`
	AnnualRate      decimal.Decimal `json:"annualRate"`
	TermMonths      int             `json:"termMonths"`
	PaymentsPerYear int             `json:"paymentsPerYear"`
	StartDate       time.Time       `json:"startDate"`
	Notes           string          `json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
}

// ToLoanResponse converts a domain.Loan to its DTO.
func ToLoanResponse(loan *domain.Loan) LoanResponse {
	return LoanResponse{
		LoanID:          loan.LoanID,
		Name:            loan.Name,
		Principal:       loan.Principal,
		AnnualRate:      loan.AnnualRate,
		TermMonths:      loan.TermMonths,
		PaymentsPerYear: loan.PaymentsPerYear,
		StartDate:       loan.StartDate,
		Notes:           loan.Notes,
		CreatedAt:       loan.CreatedAt,
		LastUpdatedAt:   loan.LastUpdatedAt,
	}
}

// ToLoanResponses converts a slice of loans.
func ToLoanResponses(loans []domain.Loan) []LoanResponse {
	out := make([]LoanResponse, 0, len(loans))
	for i := range loans {
		out = append(out, ToLoanResponse(&loans[i]))
	}
	return out
}

// LoanPaymentResponse is one row of an amortization schedule.
type LoanPaymentResponse struct {
	Number        int             `json:"number"`
	Month         string          `json:"month"`
	Payment       decimal.Decimal `json:"payment"`
	Principal     decimal.Decimal `json:"principal"`
	Interest      decimal.Decimal `json:"interest"`
	EndingBalance decimal.Decimal `json:"endingBalance"`
	Skipped       bool            `json:"skipped"`
}

// AmortizationResponse is the full schedule for one loan.
type AmortizationResponse struct {
	LoanID        string                `json:"loanID"`
	Payment       decimal.Decimal       `json:"payment"`
	Payments      []LoanPaymentResponse `json:"payments"`
	TotalInterest decimal.Decimal       `json:"totalInterest"`
	TotalPaid     decimal.Decimal       `json:"totalPaid"`
}

// ToAmortizationResponse converts an amortization schedule.
func ToAmortizationResponse(schedule *domain.AmortizationSchedule) AmortizationResponse {
	out := AmortizationResponse{
		LoanID:        schedule.LoanID,
		Payment:       schedule.Payment,
		Payments:      make([]LoanPaymentResponse, 0, len(schedule.Payments)),
		TotalInterest: schedule.TotalInterest,
		TotalPaid:     schedule.TotalPaid,
	}
	for _, p := range schedule.Payments {
		out.Payments = append(out.Payments, LoanPaymentResponse{
			Number:        p.Number,
			Month:         p.Month.String(),
			Payment:       p.Payment,
			Principal:     p.Principal,
			Interest:      p.Interest,
			EndingBalance: p.EndingBalance,
			Skipped:       p.Skipped,
		})
	}
	return out
}
