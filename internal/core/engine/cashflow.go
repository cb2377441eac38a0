package engine

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildCashFlow computes the cash-basis statement over [from, to].
// The beginning balance of the first month in range is zero; thereafter
// each month's beginning balance is the prior month's ending balance.
// Receipts, payments, and net cash flow have a Total column; the running
// balances are state, not additive quantities, and are not summed.
func BuildCashFlow(snap domain.Snapshot, from, to domain.Month) *domain.CashFlowStatement {
	months := domain.MonthRange(from, to)
	cash := CashBasis(snap.Transactions, snap.Categories)

	stmt := &domain.CashFlowStatement{
		Months:      months,
		ReceiptRows: resolveRows(cash.Receipts, months, snap.CurrentMonth, snap.Overrides),
		PaymentRows: resolveRows(cash.Payments, months, snap.CurrentMonth, snap.Overrides),
	}

	balance := decimal.Zero
	for _, m := range months {
		row := domain.CashFlowMonth{Month: m, BeginningBalance: balance}
		row.Receipts = sumRowsForMonth(stmt.ReceiptRows, m)
		row.Payments = sumRowsForMonth(stmt.PaymentRows, m)
		row.NetCashFlow = row.Receipts.Sub(row.Payments)
		row.EndingBalance = row.BeginningBalance.Add(row.NetCashFlow)
		balance = row.EndingBalance

		stmt.TotalReceipts = stmt.TotalReceipts.Add(row.Receipts)
		stmt.TotalPayments = stmt.TotalPayments.Add(row.Payments)
		stmt.ByMonth = append(stmt.ByMonth, row)
	}
	stmt.TotalNet = stmt.TotalReceipts.Sub(stmt.TotalPayments)
	return stmt
}
