package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// StatementOptions carries the caller-tunable knobs for statement
// generation. Zero values fall back to the configured defaults: the
// wall-clock month and the configured tax mode.
type StatementOptions struct {
	CurrentMonth domain.Month
	TaxMode      domain.TaxMode
}

// StatementSvcFacade defines operations for generating financial statements.
type StatementSvcFacade interface {
	// ProfitAndLoss generates a profit and loss statement for a month range.
	ProfitAndLoss(ctx context.Context, from, to domain.Month, opts StatementOptions) (*domain.PLStatement, error)

	// CashFlow generates a cash flow statement for a month range.
	CashFlow(ctx context.Context, from, to domain.Month, opts StatementOptions) (*domain.CashFlowStatement, error)

	// BalanceSheet generates a balance sheet as of a specific month.
	BalanceSheet(ctx context.Context, asOf domain.Month, opts StatementOptions) (*domain.BalanceSheet, error)
}
