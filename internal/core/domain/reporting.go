package domain

import "github.com/shopspring/decimal"

// ScheduleEntry is one month of a depreciation schedule.
type ScheduleEntry struct {
	Month  Month           `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// LoanPayment is one row of an amortization schedule.
type LoanPayment struct {
	Number        int             `json:"number"`
	Month         Month           `json:"month"`
	Payment       decimal.Decimal `json:"payment"`
	Principal     decimal.Decimal `json:"principal"`
	Interest      decimal.Decimal `json:"interest"`
	EndingBalance decimal.Decimal `json:"endingBalance"`
	Skipped       bool            `json:"skipped"`
}

// AmortizationSchedule is the full payment schedule for one loan.
type AmortizationSchedule struct {
	LoanID        string          `json:"loanID"`
	Payment       decimal.Decimal `json:"payment"` // level per-period payment
	Payments      []LoanPayment   `json:"payments"`
	TotalInterest decimal.Decimal `json:"totalInterest"` // includes interest accrued on skipped payments
	TotalPaid     decimal.Decimal `json:"totalPaid"`
}

// Ratio is a displayable percentage that may be undefined (for example
// gross margin in a month with zero revenue). Undefined ratios carry a
// sentinel, never an infinite or NaN numeric.
type Ratio struct {
	Valid bool            `json:"valid"`
	Value decimal.Decimal `json:"value"` // meaningful only when Valid
}

// CategoryRow is one statement row: a category and its resolved value
// for each month of the statement range, plus the row total.
type CategoryRow struct {
	CategoryID string                    `json:"categoryID"`
	Name       string                    `json:"name"`
	ByMonth    map[Month]decimal.Decimal `json:"byMonth"`
	Total      decimal.Decimal           `json:"total"`
}

// PLMonth holds the computed Profit & Loss lines for one month.
type PLMonth struct {
	Month               Month           `json:"month"`
	Revenue             decimal.Decimal `json:"revenue"`
	COGS                decimal.Decimal `json:"cogs"`
	GrossProfit         decimal.Decimal `json:"grossProfit"`
	GrossMargin         Ratio           `json:"grossMargin"`
	OperatingExpenses   decimal.Decimal `json:"operatingExpenses"`
	Depreciation        decimal.Decimal `json:"depreciation"`
	LoanInterest        decimal.Decimal `json:"loanInterest"`
	NetIncomeBeforeTax  decimal.Decimal `json:"netIncomeBeforeTax"`
	IncomeTax           decimal.Decimal `json:"incomeTax"`
	NetIncomeAfterTax   decimal.Decimal `json:"netIncomeAfterTax"`
	CumulativeNetIncome decimal.Decimal `json:"cumulativeNetIncome"`
	Projected           bool            `json:"projected"`
}

// PLStatement is a Profit & Loss statement over a month range, with a
// Total column summing all months.
type PLStatement struct {
	Months      []Month       `json:"months"`
	RevenueRows []CategoryRow `json:"revenueRows"`
	COGSRows    []CategoryRow `json:"cogsRows"`
	ExpenseRows []CategoryRow `json:"expenseRows"`
	ByMonth     []PLMonth     `json:"byMonth"`
	Total       PLMonth       `json:"total"`
	TaxMode     TaxMode       `json:"taxMode"`
}

// CashFlowMonth holds the cash movement for one month.
type CashFlowMonth struct {
	Month            Month           `json:"month"`
	BeginningBalance decimal.Decimal `json:"beginningBalance"`
	Receipts         decimal.Decimal `json:"receipts"`
	Payments         decimal.Decimal `json:"payments"`
	NetCashFlow      decimal.Decimal `json:"netCashFlow"`
	EndingBalance    decimal.Decimal `json:"endingBalance"`
}

// CashFlowStatement is a cash-basis statement over a month range.
// TotalReceipts/TotalPayments/TotalNet sum all months; the running
// balances are state, not additive quantities, and have no totals.
type CashFlowStatement struct {
	Months        []Month         `json:"months"`
	ReceiptRows   []CategoryRow   `json:"receiptRows"`
	PaymentRows   []CategoryRow   `json:"paymentRows"`
	ByMonth       []CashFlowMonth `json:"byMonth"`
	TotalReceipts decimal.Decimal `json:"totalReceipts"`
	TotalPayments decimal.Decimal `json:"totalPayments"`
	TotalNet      decimal.Decimal `json:"totalNet"`
}

// BalanceLine is one named amount on the balance sheet.
type BalanceLine struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// BalanceSheet is a point-in-time snapshot as of one month.
// The balance invariant (assets = liabilities + equity within a cent)
// is the correctness oracle for the whole engine.
type BalanceSheet struct {
	AsOf Month `json:"asOf"`

	Cash                    decimal.Decimal `json:"cash"`
	AccountsReceivable      []BalanceLine   `json:"accountsReceivable"`
	TotalReceivable         decimal.Decimal `json:"totalReceivable"`
	FixedAssetsGross        decimal.Decimal `json:"fixedAssetsGross"`
	AccumulatedDepreciation decimal.Decimal `json:"accumulatedDepreciation"`
	FixedAssetsNet          decimal.Decimal `json:"fixedAssetsNet"`
	TotalAssets             decimal.Decimal `json:"totalAssets"`

	AccountsPayable  []BalanceLine   `json:"accountsPayable"`
	TotalPayable     decimal.Decimal `json:"totalPayable"`
	LoansPayable     decimal.Decimal `json:"loansPayable"`
	SalesTaxPayable  decimal.Decimal `json:"salesTaxPayable"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`

	CommonStock      decimal.Decimal `json:"commonStock"`
	APIC             decimal.Decimal `json:"apic"`
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`

	Difference decimal.Decimal `json:"difference"` // assets - (liabilities + equity)
	Balanced   bool            `json:"balanced"`
}
