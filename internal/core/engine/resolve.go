package engine

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Resolve returns the effective value for one statement cell.
// Precedence:
//  1. a user-entered override for (categoryID, month) always wins;
//  2. a future month with a zero computed baseline falls back to the
//     run-rate projection: the mean of the category's non-zero
//     historical totals for months up to and including currentMonth;
//  3. otherwise the computed baseline is returned unchanged.
//
// Statement totals must always be computed from resolved values so that
// they reflect every override and projection applied to their cells.
func Resolve(categoryID string, month domain.Month, baseline decimal.Decimal,
	history map[domain.Month]decimal.Decimal, currentMonth domain.Month,
	overrides domain.OverrideSet) decimal.Decimal {

	if v, ok := overrides.Lookup(categoryID, month); ok {
		return v
	}
	if month.After(currentMonth) && baseline.IsZero() {
		return RunRate(history, currentMonth)
	}
	return baseline
}

// RunRate is the arithmetic mean of the non-zero historical totals over
// months not after currentMonth, rounded to the cent; zero when no such
// months exist.
func RunRate(history map[domain.Month]decimal.Decimal, currentMonth domain.Month) decimal.Decimal {
	sum := decimal.Zero
	count := 0
	for month, amount := range history {
		if month.After(currentMonth) || amount.IsZero() {
			continue
		}
		sum = sum.Add(amount)
		count++
	}
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count))).Round(2)
}

// resolveRow builds a statement row of resolved per-month values for one
// grouped category, totalling across the given months.
func resolveRow(row *CategoryTotals, months []domain.Month, currentMonth domain.Month,
	overrides domain.OverrideSet) domain.CategoryRow {

	out := domain.CategoryRow{
		CategoryID: row.Category.CategoryID,
		Name:       row.Category.Name,
		ByMonth:    make(map[domain.Month]decimal.Decimal, len(months)),
		Total:      decimal.Zero,
	}
	for _, m := range months {
		v := Resolve(row.Category.CategoryID, m, row.ByMonth[m], row.ByMonth, currentMonth, overrides)
		out.ByMonth[m] = v
		out.Total = out.Total.Add(v)
	}
	return out
}

// resolveRows resolves every row of a grouping over the month range.
func resolveRows(g *GroupedTotals, months []domain.Month, currentMonth domain.Month,
	overrides domain.OverrideSet) []domain.CategoryRow {

	rows := make([]domain.CategoryRow, 0, len(g.Rows()))
	for _, row := range g.Rows() {
		rows = append(rows, resolveRow(row, months, currentMonth, overrides))
	}
	return rows
}

// sumRowsForMonth totals the resolved values of a set of rows for one month.
func sumRowsForMonth(rows []domain.CategoryRow, month domain.Month) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.ByMonth[month])
	}
	return total
}
