package engine

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// corporateTaxRate is the flat corporate income tax rate applied to
// positive pre-tax income in corporate mode.
var corporateTaxRate = decimal.NewFromFloat(0.21)

var hundred = decimal.NewFromInt(100)

// BuildProfitAndLoss computes the accrual-basis Profit & Loss statement
// over [from, to], one column per month plus a Total column. Every cell
// is a resolved value (override > projection > computed baseline), so
// subtotals and totals reflect overrides applied to their constituents.
func BuildProfitAndLoss(snap domain.Snapshot, from, to domain.Month) *domain.PLStatement {
	months := domain.MonthRange(from, to)
	acc := AccrualBasis(snap.Transactions, snap.Categories)

	stmt := &domain.PLStatement{
		Months:      months,
		RevenueRows: resolveRows(acc.Revenue, months, snap.CurrentMonth, snap.Overrides),
		COGSRows:    resolveRows(acc.COGS, months, snap.CurrentMonth, snap.Overrides),
		ExpenseRows: resolveRows(acc.Opex, months, snap.CurrentMonth, snap.Overrides),
		TaxMode:     snap.TaxMode,
	}
	depreciationRows := resolveRows(acc.Depreciation, months, snap.CurrentMonth, snap.Overrides)
	stmt.ExpenseRows = append(stmt.ExpenseRows, depreciationRows...)

	cumulative := decimal.Zero
	for _, m := range months {
		row := domain.PLMonth{Month: m, Projected: m.After(snap.CurrentMonth)}

		row.Revenue = sumRowsForMonth(stmt.RevenueRows, m)
		row.COGS = sumRowsForMonth(stmt.COGSRows, m)
		row.GrossProfit = row.Revenue.Sub(row.COGS)
		row.GrossMargin = grossMargin(row.GrossProfit, row.Revenue)

		opex := sumRowsForMonth(stmt.ExpenseRows, m)
		row.Depreciation = DepreciationForMonth(snap.FixedAssets, m)
		row.LoanInterest = LoanInterestForMonth(snap.Loans, snap.SkippedFor, m)
		row.OperatingExpenses = opex.Add(row.Depreciation).Add(row.LoanInterest)

		row.NetIncomeBeforeTax = row.GrossProfit.Sub(row.OperatingExpenses)
		row.IncomeTax = incomeTax(row.NetIncomeBeforeTax, m, snap.TaxMode, snap.Overrides)
		row.NetIncomeAfterTax = row.NetIncomeBeforeTax.Sub(row.IncomeTax)

		cumulative = cumulative.Add(row.NetIncomeAfterTax)
		row.CumulativeNetIncome = cumulative

		stmt.ByMonth = append(stmt.ByMonth, row)
	}

	stmt.Total = totalColumn(stmt.ByMonth)
	return stmt
}

// incomeTax derives the income tax for one month. Corporate mode taxes
// positive pre-tax income at the flat rate and honors the override keyed
// on the reserved tax row; pass-through mode reports no tax and the
// override row is not consulted.
func incomeTax(nibt decimal.Decimal, month domain.Month, mode domain.TaxMode, overrides domain.OverrideSet) decimal.Decimal {
	if mode != domain.TaxModeCorporate {
		return decimal.Zero
	}
	if v, ok := overrides.Lookup(domain.TaxOverrideCategoryID, month); ok {
		return v
	}
	if nibt.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return nibt.Mul(corporateTaxRate).Round(2)
}

// grossMargin is gross profit over revenue as a percentage; undefined
// (sentinel, not a number) when revenue is zero.
func grossMargin(grossProfit, revenue decimal.Decimal) domain.Ratio {
	if revenue.IsZero() {
		return domain.Ratio{}
	}
	return domain.Ratio{Valid: true, Value: grossProfit.Div(revenue).Mul(hundred).Round(2)}
}

// totalColumn sums the monthly P&L columns. Net income after tax is
// recomputed from the summed NIBT and tax so the identity
// NIAT = NIBT - Tax holds exactly in the Total column too.
func totalColumn(byMonth []domain.PLMonth) domain.PLMonth {
	total := domain.PLMonth{}
	for _, row := range byMonth {
		total.Revenue = total.Revenue.Add(row.Revenue)
		total.COGS = total.COGS.Add(row.COGS)
		total.GrossProfit = total.GrossProfit.Add(row.GrossProfit)
		total.OperatingExpenses = total.OperatingExpenses.Add(row.OperatingExpenses)
		total.Depreciation = total.Depreciation.Add(row.Depreciation)
		total.LoanInterest = total.LoanInterest.Add(row.LoanInterest)
		total.NetIncomeBeforeTax = total.NetIncomeBeforeTax.Add(row.NetIncomeBeforeTax)
		total.IncomeTax = total.IncomeTax.Add(row.IncomeTax)
	}
	total.NetIncomeAfterTax = total.NetIncomeBeforeTax.Sub(total.IncomeTax)
	total.GrossMargin = grossMargin(total.GrossProfit, total.Revenue)
	if n := len(byMonth); n > 0 {
		total.CumulativeNetIncome = byMonth[n-1].CumulativeNetIncome
	}
	return total
}
