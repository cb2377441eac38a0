package engine

import (
	"sort"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryTotals holds one category's monthly totals.
type CategoryTotals struct {
	Category domain.Category
	ByMonth  map[domain.Month]decimal.Decimal
}

// GroupedTotals is an order-preserving grouping of monthly totals by
// category. Row order is deterministic: first-seen insertion order, or
// whatever explicit order Sort* imposes afterwards. A bare map would
// randomize statement row order between runs.
type GroupedTotals struct {
	rows  []*CategoryTotals
	index map[string]*CategoryTotals
}

// NewGroupedTotals returns an empty grouping.
func NewGroupedTotals() *GroupedTotals {
	return &GroupedTotals{index: make(map[string]*CategoryTotals)}
}

// Register ensures a row exists for the category without adding amounts.
// Used for rows whose values are override-only.
func (g *GroupedTotals) Register(cat domain.Category) *CategoryTotals {
	if row, ok := g.index[cat.CategoryID]; ok {
		return row
	}
	row := &CategoryTotals{Category: cat, ByMonth: make(map[domain.Month]decimal.Decimal)}
	g.rows = append(g.rows, row)
	g.index[cat.CategoryID] = row
	return row
}

// Add accumulates an amount into the category's total for a month.
func (g *GroupedTotals) Add(cat domain.Category, month domain.Month, amount decimal.Decimal) {
	row := g.Register(cat)
	row.ByMonth[month] = row.ByMonth[month].Add(amount)
}

// Rows returns the grouped rows in their current order.
func (g *GroupedTotals) Rows() []*CategoryTotals {
	return g.rows
}

// History returns a category's monthly totals, or nil if absent.
func (g *GroupedTotals) History(categoryID string) map[domain.Month]decimal.Decimal {
	if row, ok := g.index[categoryID]; ok {
		return row.ByMonth
	}
	return nil
}

// Total returns the category's total for one month (zero when absent).
func (g *GroupedTotals) Total(categoryID string, month domain.Month) decimal.Decimal {
	if row, ok := g.index[categoryID]; ok {
		return row.ByMonth[month]
	}
	return decimal.Zero
}

// SortForCashflow orders rows by cashflow_sort_order, then name, the
// stable row order of the cash flow statement.
func (g *GroupedTotals) SortForCashflow() {
	sort.SliceStable(g.rows, func(i, j int) bool {
		a, b := g.rows[i].Category, g.rows[j].Category
		if a.CashflowSortOrder != b.CashflowSortOrder {
			return a.CashflowSortOrder < b.CashflowSortOrder
		}
		return a.Name < b.Name
	})
}

// CashTotals is the cash-basis aggregation feeding the cash flow
// statement: settled transactions grouped by the month cash moved.
type CashTotals struct {
	Receipts *GroupedTotals
	Payments *GroupedTotals
}

// CashBasis groups transactions by month_paid, summing amounts,
// restricted to settled transactions, split receivable vs payable.
func CashBasis(transactions []domain.Transaction, categories []domain.Category) CashTotals {
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.CategoryID] = c
	}

	totals := CashTotals{Receipts: NewGroupedTotals(), Payments: NewGroupedTotals()}
	for _, txn := range transactions {
		if !txn.IsSettled() || txn.MonthPaid.IsZero() {
			continue
		}
		cat, ok := byID[txn.CategoryID]
		if !ok {
			// Absent categories contribute zero, never an error.
			continue
		}
		if txn.TransactionType == domain.Receivable {
			totals.Receipts.Add(cat, txn.MonthPaid, txn.Amount)
		} else {
			totals.Payments.Add(cat, txn.MonthPaid, txn.Amount)
		}
	}
	totals.Receipts.SortForCashflow()
	totals.Payments.SortForCashflow()
	return totals
}

// AccrualTotals is the accrual-basis aggregation feeding the P&L:
// transactions grouped by month_due into revenue, COGS, operating
// expense, and depreciation buckets. Depreciation rows are registered
// but carry no transaction amounts; their values are override-only.
type AccrualTotals struct {
	Revenue      *GroupedTotals
	COGS         *GroupedTotals
	Opex         *GroupedTotals
	Depreciation *GroupedTotals
}

// AccrualBasis groups transactions by month_due. Categories flagged as
// hidden are excluded entirely. Revenue rows sum the gross amount;
// expense rows sum the pre-tax amount where recorded.
func AccrualBasis(transactions []domain.Transaction, categories []domain.Category) AccrualTotals {
	byID := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byID[c.CategoryID] = c
	}

	totals := AccrualTotals{
		Revenue:      NewGroupedTotals(),
		COGS:         NewGroupedTotals(),
		Opex:         NewGroupedTotals(),
		Depreciation: NewGroupedTotals(),
	}

	// Depreciation rows exist even with no transactions behind them.
	for _, cat := range categories {
		if cat.IsDepreciation && !cat.HiddenFromPL {
			totals.Depreciation.Register(cat)
		}
	}

	for _, txn := range transactions {
		if txn.MonthDue.IsZero() {
			continue
		}
		cat, ok := byID[txn.CategoryID]
		if !ok || cat.HiddenFromPL || cat.IsDepreciation {
			continue
		}
		switch {
		case cat.IsCOGS:
			totals.COGS.Add(cat, txn.MonthDue, txn.EffectiveExpenseAmount())
		case txn.TransactionType == domain.Receivable:
			totals.Revenue.Add(cat, txn.MonthDue, txn.Amount)
		default:
			totals.Opex.Add(cat, txn.MonthDue, txn.EffectiveExpenseAmount())
		}
	}
	return totals
}
