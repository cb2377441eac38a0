package engine_test

import (
	"testing"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/core/engine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plFixture: January books 1000 revenue, 200 COGS, 300 rent.
// February is empty. No assets or loans.
func plFixture(mode domain.TaxMode) domain.Snapshot {
	jan := month(2024, time.January)
	return domain.Snapshot{
		Transactions: []domain.Transaction{
			receivable("t1", "sales", 1000, jan, jan, domain.StatusReceived),
			payable("t2", "materials", 200, jan, jan, domain.StatusPaid),
			payable("t3", "rent", 300, jan, jan, domain.StatusPaid),
		},
		Categories:   fixtureCategories(),
		CurrentMonth: month(2024, time.February),
		TaxMode:      mode,
	}
}

func TestBuildProfitAndLoss_CorporateTax(t *testing.T) {
	stmt := engine.BuildProfitAndLoss(plFixture(domain.TaxModeCorporate),
		month(2024, time.January), month(2024, time.February))

	require.Len(t, stmt.ByMonth, 2)
	jan := stmt.ByMonth[0]

	assert.True(t, dec(1000).Equal(jan.Revenue))
	assert.True(t, dec(200).Equal(jan.COGS))
	assert.True(t, dec(800).Equal(jan.GrossProfit))
	require.True(t, jan.GrossMargin.Valid)
	assert.True(t, dec(80).Equal(jan.GrossMargin.Value))
	assert.True(t, dec(300).Equal(jan.OperatingExpenses))
	assert.True(t, dec(500).Equal(jan.NetIncomeBeforeTax))
	// 21% of 500.
	assert.True(t, dec(105).Equal(jan.IncomeTax))
	assert.True(t, dec(395).Equal(jan.NetIncomeAfterTax))
}

func TestBuildProfitAndLoss_NIATIdentityHoldsEverywhere(t *testing.T) {
	stmt := engine.BuildProfitAndLoss(plFixture(domain.TaxModeCorporate),
		month(2024, time.January), month(2024, time.February))

	for _, row := range stmt.ByMonth {
		assert.True(t, row.NetIncomeAfterTax.Equal(row.NetIncomeBeforeTax.Sub(row.IncomeTax)),
			"month %s: NIAT != NIBT - tax", row.Month)
	}
	total := stmt.Total
	assert.True(t, total.NetIncomeAfterTax.Equal(total.NetIncomeBeforeTax.Sub(total.IncomeTax)),
		"total column: NIAT != NIBT - tax")
}

func TestBuildProfitAndLoss_GrossMarginSentinelOnZeroRevenue(t *testing.T) {
	stmt := engine.BuildProfitAndLoss(plFixture(domain.TaxModePassthrough),
		month(2024, time.January), month(2024, time.February))

	feb := stmt.ByMonth[1]
	assert.True(t, feb.Revenue.IsZero())
	assert.False(t, feb.GrossMargin.Valid, "zero revenue yields a sentinel, not a number")
}

func TestBuildProfitAndLoss_PassthroughNeverTaxes(t *testing.T) {
	snap := plFixture(domain.TaxModePassthrough)
	// A tax override exists but pass-through mode must ignore it.
	snap.Overrides = domain.OverrideSet{
		{CategoryID: domain.TaxOverrideCategoryID, Month: month(2024, time.January)}: dec(999),
	}

	stmt := engine.BuildProfitAndLoss(snap, month(2024, time.January), month(2024, time.February))
	for _, row := range stmt.ByMonth {
		assert.True(t, row.IncomeTax.IsZero(), "month %s", row.Month)
	}
	assert.True(t, stmt.Total.IncomeTax.IsZero())
}

func TestBuildProfitAndLoss_TaxOverrideRow(t *testing.T) {
	snap := plFixture(domain.TaxModeCorporate)
	snap.Overrides = domain.OverrideSet{
		{CategoryID: domain.TaxOverrideCategoryID, Month: month(2024, time.January)}: dec(50),
	}

	stmt := engine.BuildProfitAndLoss(snap, month(2024, time.January), month(2024, time.January))
	jan := stmt.ByMonth[0]
	assert.True(t, dec(50).Equal(jan.IncomeTax))
	assert.True(t, dec(450).Equal(jan.NetIncomeAfterTax))
}

func TestBuildProfitAndLoss_CumulativeNetIncomeCarriesForward(t *testing.T) {
	snap := plFixture(domain.TaxModePassthrough)
	snap.CurrentMonth = month(2024, time.March)
	stmt := engine.BuildProfitAndLoss(snap, month(2024, time.January), month(2024, time.March))

	require.Len(t, stmt.ByMonth, 3)
	assert.True(t, dec(500).Equal(stmt.ByMonth[0].CumulativeNetIncome))
	// Empty months carry the running sum forward unchanged.
	assert.True(t, dec(500).Equal(stmt.ByMonth[1].CumulativeNetIncome))
	assert.True(t, dec(500).Equal(stmt.ByMonth[2].CumulativeNetIncome))
	assert.True(t, dec(500).Equal(stmt.Total.CumulativeNetIncome))
}

func TestBuildProfitAndLoss_ProjectsFutureMonths(t *testing.T) {
	snap := plFixture(domain.TaxModePassthrough)
	snap.CurrentMonth = month(2024, time.January)

	stmt := engine.BuildProfitAndLoss(snap, month(2024, time.January), month(2024, time.February))
	feb := stmt.ByMonth[1]
	assert.True(t, feb.Projected)
	// February revenue projects to January's run rate.
	assert.True(t, dec(1000).Equal(feb.Revenue), "projected revenue = %s", feb.Revenue)
	assert.True(t, dec(200).Equal(feb.COGS))
	assert.True(t, dec(300).Equal(feb.OperatingExpenses))
}

func TestBuildProfitAndLoss_OverrideFlowsIntoTotals(t *testing.T) {
	snap := plFixture(domain.TaxModePassthrough)
	snap.Overrides = domain.OverrideSet{
		{CategoryID: "sales", Month: month(2024, time.January)}: dec(1500),
	}

	stmt := engine.BuildProfitAndLoss(snap, month(2024, time.January), month(2024, time.February))
	assert.True(t, dec(1500).Equal(stmt.ByMonth[0].Revenue))
	assert.True(t, dec(1500).Equal(stmt.Total.Revenue), "totals are computed from resolved cells")
}

func TestBuildProfitAndLoss_IncludesAssetDepreciationAndLoanInterest(t *testing.T) {
	snap := plFixture(domain.TaxModePassthrough)
	snap.FixedAssets = []domain.FixedAsset{{
		AssetID:            "a1",
		PurchaseCost:       decimal.NewFromInt(12000),
		SalvageValue:       decimal.Zero,
		UsefulLifeMonths:   12,
		DepreciationMethod: domain.StraightLine,
		PurchaseDate:       time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}}
	snap.Loans = []domain.Loan{{
		LoanID:          "l1",
		Principal:       decimal.NewFromInt(10000),
		AnnualRate:      decimal.NewFromInt(12),
		TermMonths:      12,
		PaymentsPerYear: 12,
		StartDate:       time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
	}}

	stmt := engine.BuildProfitAndLoss(snap, month(2024, time.January), month(2024, time.January))
	jan := stmt.ByMonth[0]

	assert.True(t, dec(1000).Equal(jan.Depreciation))
	// First loan payment lands in January 2024: interest 100.00.
	assert.True(t, dec(100).Equal(jan.LoanInterest))
	// 300 rent + 1000 depreciation + 100 interest.
	assert.True(t, dec(1400).Equal(jan.OperatingExpenses))
}
