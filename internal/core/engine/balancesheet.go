package engine

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// balanceEpsilon is the currency-rounding tolerance of the balance
// invariant: one cent.
var balanceEpsilon = decimal.NewFromFloat(0.01)

// BuildBalanceSheet computes the point-in-time balance sheet as of one
// month. Cash comes from the cash-flow running balance, retained
// earnings from the cumulative P&L net income, both accumulated from the
// earliest month any record touches. The balance invariant
// (TotalAssets = TotalLiabilities + TotalEquity within a cent) is
// reported with its signed difference; it is the correctness oracle for
// the whole engine, not a display concern.
func BuildBalanceSheet(snap domain.Snapshot, asOf domain.Month) *domain.BalanceSheet {
	start := earliestMonth(snap, asOf)

	bs := &domain.BalanceSheet{AsOf: asOf}

	// Assets.
	cashFlow := BuildCashFlow(snap, start, asOf)
	if n := len(cashFlow.ByMonth); n > 0 {
		bs.Cash = cashFlow.ByMonth[n-1].EndingBalance
	}
	bs.AccountsReceivable, bs.TotalReceivable = outstandingByCategory(snap, domain.Receivable, asOf)

	for _, asset := range snap.FixedAssets {
		if domain.MonthOf(asset.PurchaseDate).After(asOf) {
			continue
		}
		bs.FixedAssetsGross = bs.FixedAssetsGross.Add(asset.PurchaseCost)
		bs.AccumulatedDepreciation = bs.AccumulatedDepreciation.Add(
			AccumulatedDepreciation(DepreciationSchedule(asset), asOf))
	}
	bs.FixedAssetsNet = bs.FixedAssetsGross.Sub(bs.AccumulatedDepreciation)
	bs.TotalAssets = bs.Cash.Add(bs.TotalReceivable).Add(bs.FixedAssetsNet)

	// Liabilities.
	bs.AccountsPayable, bs.TotalPayable = outstandingByCategory(snap, domain.Payable, asOf)
	bs.LoansPayable = loansPayable(snap, asOf)
	bs.SalesTaxPayable = salesTaxPayable(snap, asOf)
	bs.TotalLiabilities = bs.TotalPayable.Add(bs.LoansPayable).Add(bs.SalesTaxPayable)

	// Equity.
	bs.CommonStock = snap.Equity.CommonStock()
	bs.APIC = snap.Equity.APIC
	pl := BuildProfitAndLoss(snap, start, asOf)
	if n := len(pl.ByMonth); n > 0 {
		bs.RetainedEarnings = pl.ByMonth[n-1].CumulativeNetIncome
	}
	bs.TotalEquity = bs.CommonStock.Add(bs.APIC).Add(bs.RetainedEarnings)

	bs.Difference = bs.TotalAssets.Sub(bs.TotalLiabilities.Add(bs.TotalEquity))
	bs.Balanced = bs.Difference.Abs().LessThanOrEqual(balanceEpsilon)
	return bs
}

// outstandingByCategory sums transactions of one type that are due on or
// before asOf but not yet settled as of asOf, broken out by category.
func outstandingByCategory(snap domain.Snapshot, txnType domain.TransactionType, asOf domain.Month) ([]domain.BalanceLine, decimal.Decimal) {
	grouped := NewGroupedTotals()
	for _, txn := range snap.Transactions {
		if txn.TransactionType != txnType || txn.MonthDue.IsZero() || txn.MonthDue.After(asOf) {
			continue
		}
		// Settled within the as-of horizon means no longer outstanding.
		if txn.IsSettled() && !txn.MonthPaid.After(asOf) {
			continue
		}
		cat := snap.CategoryByID(txn.CategoryID)
		if cat == nil {
			continue
		}
		grouped.Add(*cat, asOf, txn.Amount)
	}

	var lines []domain.BalanceLine
	total := decimal.Zero
	for _, row := range grouped.Rows() {
		amount := row.ByMonth[asOf]
		lines = append(lines, domain.BalanceLine{Name: row.Category.Name, Amount: amount})
		total = total.Add(amount)
	}
	return lines, total
}

// loansPayable sums, across loans, the schedule ending balance at the
// last payment on or before asOf. A loan with no payment due yet still
// owes its full principal.
func loansPayable(snap domain.Snapshot, asOf domain.Month) decimal.Decimal {
	total := decimal.Zero
	for _, loan := range snap.Loans {
		if domain.MonthOf(loan.StartDate).After(asOf) {
			continue
		}
		schedule, err := AmortizationSchedule(loan, snap.SkippedFor(loan.LoanID))
		if err != nil {
			continue
		}
		balance := loan.Principal
		for _, p := range schedule.Payments {
			if p.Month.After(asOf) {
				break
			}
			balance = p.EndingBalance
		}
		total = total.Add(balance)
	}
	return total
}

// salesTaxPayable accumulates the accrual totals of sales-tax-flagged
// categories through asOf.
func salesTaxPayable(snap domain.Snapshot, asOf domain.Month) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range snap.Transactions {
		if txn.MonthDue.IsZero() || txn.MonthDue.After(asOf) {
			continue
		}
		cat := snap.CategoryByID(txn.CategoryID)
		if cat == nil || !cat.IsSalesTax {
			continue
		}
		total = total.Add(txn.Amount)
	}
	return total
}

// earliestMonth finds the first month any record in the snapshot
// touches, falling back to asOf for an empty snapshot.
func earliestMonth(snap domain.Snapshot, asOf domain.Month) domain.Month {
	earliest := asOf
	consider := func(m domain.Month) {
		if !m.IsZero() && m.Before(earliest) {
			earliest = m
		}
	}
	for _, txn := range snap.Transactions {
		consider(txn.MonthDue)
		consider(txn.MonthPaid)
	}
	for _, asset := range snap.FixedAssets {
		consider(domain.MonthOf(asset.PurchaseDate))
	}
	for _, loan := range snap.Loans {
		consider(domain.MonthOf(loan.StartDate))
	}
	return earliest
}
