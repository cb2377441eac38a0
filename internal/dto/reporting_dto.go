package dto

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryRowResponse is one statement row keyed by "YYYY-MM" strings.
type CategoryRowResponse struct {
	CategoryID string                     `json:"categoryID"`
	Name       string                     `json:"name"`
	ByMonth    map[string]decimal.Decimal `json:"byMonth"`
	Total      decimal.Decimal            `json:"total"`
}

func toCategoryRowResponse(row domain.CategoryRow) CategoryRowResponse {
	byMonth := make(map[string]decimal.Decimal, len(row.ByMonth))
	for m, v := range row.ByMonth {
		byMonth[m.String()] = v
	}
	return CategoryRowResponse{
		CategoryID: row.CategoryID,
		Name:       row.Name,
		ByMonth:    byMonth,
		Total:      row.Total,
	}
}

func toCategoryRowResponses(rows []domain.CategoryRow) []CategoryRowResponse {
	out := make([]CategoryRowResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCategoryRowResponse(row))
	}
	return out
}

// RatioResponse carries a percentage that may be undefined.
type RatioResponse struct {
	Valid bool            `json:"valid"`
	Value decimal.Decimal `json:"value"`
}

// PLMonthResponse holds one month (or the total column) of a P&L.
type PLMonthResponse struct {
	Month               string          `json:"month,omitempty"`
	Revenue             decimal.Decimal `json:"revenue"`
	COGS                decimal.Decimal `json:"cogs"`
	GrossProfit         decimal.Decimal `json:"grossProfit"`
	GrossMargin         RatioResponse   `json:"grossMargin"`
	OperatingExpenses   decimal.Decimal `json:"operatingExpenses"`
	Depreciation        decimal.Decimal `json:"depreciation"`
	LoanInterest        decimal.Decimal `json:"loanInterest"`
	NetIncomeBeforeTax  decimal.Decimal `json:"netIncomeBeforeTax"`
	IncomeTax           decimal.Decimal `json:"incomeTax"`
	NetIncomeAfterTax   decimal.Decimal `json:"netIncomeAfterTax"`
	CumulativeNetIncome decimal.Decimal `json:"cumulativeNetIncome"`
	Projected           bool            `json:"projected"`
}

func toPLMonthResponse(m domain.PLMonth, includeMonth bool) PLMonthResponse {
	resp := PLMonthResponse{
		Revenue:             m.Revenue,
		COGS:                m.COGS,
		GrossProfit:         m.GrossProfit,
		GrossMargin:         RatioResponse{Valid: m.GrossMargin.Valid, Value: m.GrossMargin.Value},
		OperatingExpenses:   m.OperatingExpenses,
		Depreciation:        m.Depreciation,
		LoanInterest:        m.LoanInterest,
		NetIncomeBeforeTax:  m.NetIncomeBeforeTax,
		IncomeTax:           m.IncomeTax,
		NetIncomeAfterTax:   m.NetIncomeAfterTax,
		CumulativeNetIncome: m.CumulativeNetIncome,
		Projected:           m.Projected,
	}
	if includeMonth {
		resp.Month = m.Month.String()
	}
	return resp
}

// PLStatementResponse defines the data returned for a Profit & Loss statement.
type PLStatementResponse struct {
	Months      []string              `json:"months"`
	RevenueRows []CategoryRowResponse `json:"revenueRows"`
	COGSRows    []CategoryRowResponse `json:"cogsRows"`
	ExpenseRows []CategoryRowResponse `json:"expenseRows"`
	ByMonth     []PLMonthResponse     `json:"byMonth"`
	Total       PLMonthResponse       `json:"total"`
	TaxMode     string                `json:"taxMode"`
}

// ToPLStatementResponse converts a domain.PLStatement to its DTO.
func ToPLStatementResponse(stmt *domain.PLStatement) PLStatementResponse {
	byMonth := make([]PLMonthResponse, 0, len(stmt.ByMonth))
	for _, m := range stmt.ByMonth {
		byMonth = append(byMonth, toPLMonthResponse(m, true))
	}
	return PLStatementResponse{
		Months:      monthStrings(stmt.Months),
		RevenueRows: toCategoryRowResponses(stmt.RevenueRows),
		COGSRows:    toCategoryRowResponses(stmt.COGSRows),
		ExpenseRows: toCategoryRowResponses(stmt.ExpenseRows),
		ByMonth:     byMonth,
		Total:       toPLMonthResponse(stmt.Total, false),
		TaxMode:     string(stmt.TaxMode),
	}
}

// CashFlowMonthResponse holds one month of cash movement.
type CashFlowMonthResponse struct {
	Month            string          `json:"month"`
	BeginningBalance decimal.Decimal `json:"beginningBalance"`
	Receipts         decimal.Decimal `json:"receipts"`
	Payments         decimal.Decimal `json:"payments"`
	NetCashFlow      decimal.Decimal `json:"netCashFlow"`
	EndingBalance    decimal.Decimal `json:"endingBalance"`
}

// CashFlowStatementResponse defines the data returned for a cash flow statement.
type CashFlowStatementResponse struct {
	Months        []string                `json:"months"`
	ReceiptRows   []CategoryRowResponse   `json:"receiptRows"`
	PaymentRows   []CategoryRowResponse   `json:"paymentRows"`
	ByMonth       []CashFlowMonthResponse `json:"byMonth"`
	TotalReceipts decimal.Decimal         `json:"totalReceipts"`
	TotalPayments decimal.Decimal         `json:"totalPayments"`
	TotalNet      decimal.Decimal         `json:"totalNet"`
}

// ToCashFlowStatementResponse converts a domain.CashFlowStatement to its DTO.
func ToCashFlowStatementResponse(stmt *domain.CashFlowStatement) CashFlowStatementResponse {
	byMonth := make([]CashFlowMonthResponse, 0, len(stmt.ByMonth))
	for _, m := range stmt.ByMonth {
		byMonth = append(byMonth, CashFlowMonthResponse{
			Month:            m.Month.String(),
			BeginningBalance: m.BeginningBalance,
			Receipts:         m.Receipts,
			Payments:         m.Payments,
			NetCashFlow:      m.NetCashFlow,
			EndingBalance:    m.EndingBalance,
		})
	}
	return CashFlowStatementResponse{
		Months:        monthStrings(stmt.Months),
		ReceiptRows:   toCategoryRowResponses(stmt.ReceiptRows),
		PaymentRows:   toCategoryRowResponses(stmt.PaymentRows),
		ByMonth:       byMonth,
		TotalReceipts: stmt.TotalReceipts,
		TotalPayments: stmt.TotalPayments,
		TotalNet:      stmt.TotalNet,
	}
}

// BalanceLineResponse is one named amount on the balance sheet.
type BalanceLineResponse struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

func toBalanceLineResponses(lines []domain.BalanceLine) []BalanceLineResponse {
	out := make([]BalanceLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, BalanceLineResponse{Name: l.Name, Amount: l.Amount})
	}
	return out
}

// BalanceSheetResponse defines the data returned for a balance sheet.
type BalanceSheetResponse struct {
	AsOf string `json:"asOf"`

	Cash                    decimal.Decimal       `json:"cash"`
	AccountsReceivable      []BalanceLineResponse `json:"accountsReceivable"`
	TotalReceivable         decimal.Decimal       `json:"totalReceivable"`
	FixedAssetsGross        decimal.Decimal       `json:"fixedAssetsGross"`
	AccumulatedDepreciation decimal.Decimal       `json:"accumulatedDepreciation"`
	FixedAssetsNet          decimal.Decimal       `json:"fixedAssetsNet"`
	TotalAssets             decimal.Decimal       `json:"totalAssets"`

	AccountsPayable  []BalanceLineResponse `json:"accountsPayable"`
	TotalPayable     decimal.Decimal       `json:"totalPayable"`
	LoansPayable     decimal.Decimal       `json:"loansPayable"`
	SalesTaxPayable  decimal.Decimal       `json:"salesTaxPayable"`
	TotalLiabilities decimal.Decimal       `json:"totalLiabilities"`

	CommonStock      decimal.Decimal `json:"commonStock"`
	APIC             decimal.Decimal `json:"apic"`
	RetainedEarnings decimal.Decimal `json:"retainedEarnings"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`

	Difference decimal.Decimal `json:"difference"`
	Balanced   bool            `json:"balanced"`
}

// ToBalanceSheetResponse converts a domain.BalanceSheet to its DTO.
func ToBalanceSheetResponse(bs *domain.BalanceSheet) BalanceSheetResponse {
	return BalanceSheetResponse{
		AsOf:                    bs.AsOf.String(),
		Cash:                    bs.Cash,
		AccountsReceivable:      toBalanceLineResponses(bs.AccountsReceivable),
		TotalReceivable:         bs.TotalReceivable,
		FixedAssetsGross:        bs.FixedAssetsGross,
		AccumulatedDepreciation: bs.AccumulatedDepreciation,
		FixedAssetsNet:          bs.FixedAssetsNet,
		TotalAssets:             bs.TotalAssets,
		AccountsPayable:         toBalanceLineResponses(bs.AccountsPayable),
		TotalPayable:            bs.TotalPayable,
		LoansPayable:            bs.LoansPayable,
		SalesTaxPayable:         bs.SalesTaxPayable,
		TotalLiabilities:        bs.TotalLiabilities,
		CommonStock:             bs.CommonStock,
		APIC:                    bs.APIC,
		RetainedEarnings:        bs.RetainedEarnings,
		TotalEquity:             bs.TotalEquity,
		Difference:              bs.Difference,
		Balanced:                bs.Balanced,
	}
}
