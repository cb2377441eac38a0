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

func TestBuildBalanceSheet_BalancedByConstruction(t *testing.T) {
	// One receivable earned and collected in January: cash 1000,
	// retained earnings 1000, everything else zero.
	jan := month(2024, time.January)
	snap := domain.Snapshot{
		Transactions: []domain.Transaction{
			receivable("t1", "sales", 1000, jan, jan, domain.StatusReceived),
		},
		Categories:   fixtureCategories(),
		CurrentMonth: jan,
		TaxMode:      domain.TaxModePassthrough,
	}

	bs := engine.BuildBalanceSheet(snap, jan)

	assert.True(t, dec(1000).Equal(bs.Cash))
	assert.True(t, bs.TotalReceivable.IsZero())
	assert.True(t, dec(1000).Equal(bs.TotalAssets))
	assert.True(t, bs.TotalLiabilities.IsZero())
	assert.True(t, dec(1000).Equal(bs.RetainedEarnings))
	assert.True(t, dec(1000).Equal(bs.TotalEquity))
	assert.True(t, bs.Balanced)
	assert.True(t, bs.Difference.IsZero(), "difference = %s", bs.Difference)
}

func TestBuildBalanceSheet_OutstandingReceivableBalances(t *testing.T) {
	// Revenue earned in January but not yet collected: the claim sits in
	// accounts receivable and retained earnings, and still balances.
	jan := month(2024, time.January)
	snap := domain.Snapshot{
		Transactions: []domain.Transaction{
			receivable("t1", "sales", 1000, jan, domain.Month{}, domain.StatusPending),
		},
		Categories:   fixtureCategories(),
		CurrentMonth: jan,
		TaxMode:      domain.TaxModePassthrough,
	}

	bs := engine.BuildBalanceSheet(snap, jan)

	assert.True(t, bs.Cash.IsZero())
	require.Len(t, bs.AccountsReceivable, 1)
	assert.Equal(t, "Sales", bs.AccountsReceivable[0].Name)
	assert.True(t, dec(1000).Equal(bs.TotalReceivable))
	assert.True(t, dec(1000).Equal(bs.RetainedEarnings))
	assert.True(t, bs.Balanced)
}

func TestBuildBalanceSheet_ReceivableSettledLaterIsOutstandingInBetween(t *testing.T) {
	jan := month(2024, time.January)
	mar := month(2024, time.March)
	snap := domain.Snapshot{
		Transactions: []domain.Transaction{
			receivable("t1", "sales", 500, jan, mar, domain.StatusReceived),
		},
		Categories:   fixtureCategories(),
		CurrentMonth: mar,
		TaxMode:      domain.TaxModePassthrough,
	}

	// As of January the cash has not arrived yet.
	bs := engine.BuildBalanceSheet(snap, jan)
	assert.True(t, dec(500).Equal(bs.TotalReceivable))
	assert.True(t, bs.Cash.IsZero())

	// As of March it has.
	bs = engine.BuildBalanceSheet(snap, mar)
	assert.True(t, bs.TotalReceivable.IsZero())
	assert.True(t, dec(500).Equal(bs.Cash))
}

func TestBuildBalanceSheet_FixedAssetsNetOfDepreciation(t *testing.T) {
	snap := domain.Snapshot{
		Categories: fixtureCategories(),
		FixedAssets: []domain.FixedAsset{{
			AssetID:            "a1",
			PurchaseCost:       decimal.NewFromInt(12000),
			SalvageValue:       decimal.Zero,
			UsefulLifeMonths:   12,
			DepreciationMethod: domain.StraightLine,
			PurchaseDate:       time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		}},
		CurrentMonth: month(2024, time.March),
		TaxMode:      domain.TaxModePassthrough,
	}

	bs := engine.BuildBalanceSheet(snap, month(2024, time.March))

	assert.True(t, dec(12000).Equal(bs.FixedAssetsGross))
	assert.True(t, dec(3000).Equal(bs.AccumulatedDepreciation))
	assert.True(t, dec(9000).Equal(bs.FixedAssetsNet))
}

func TestBuildBalanceSheet_AssetPurchasedLaterIsExcluded(t *testing.T) {
	snap := domain.Snapshot{
		Categories: fixtureCategories(),
		FixedAssets: []domain.FixedAsset{{
			AssetID:            "a1",
			PurchaseCost:       decimal.NewFromInt(5000),
			SalvageValue:       decimal.Zero,
			UsefulLifeMonths:   10,
			DepreciationMethod: domain.StraightLine,
			PurchaseDate:       time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		}},
		CurrentMonth: month(2024, time.June),
		TaxMode:      domain.TaxModePassthrough,
	}

	bs := engine.BuildBalanceSheet(snap, month(2024, time.February))
	assert.True(t, bs.FixedAssetsGross.IsZero())
	assert.True(t, bs.FixedAssetsNet.IsZero())
}

func TestBuildBalanceSheet_LoansPayableTracksSchedule(t *testing.T) {
	loan := domain.Loan{
		LoanID:          "l1",
		Principal:       decimal.NewFromInt(10000),
		AnnualRate:      decimal.NewFromInt(12),
		TermMonths:      12,
		PaymentsPerYear: 12,
		StartDate:       time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC),
	}
	snap := domain.Snapshot{
		Categories:   fixtureCategories(),
		Loans:        []domain.Loan{loan},
		CurrentMonth: month(2024, time.June),
		TaxMode:      domain.TaxModePassthrough,
	}

	schedule, err := engine.AmortizationSchedule(loan, nil)
	require.NoError(t, err)

	// After the February payment (payment 2) the balance sheet owes the
	// schedule's ending balance.
	bs := engine.BuildBalanceSheet(snap, month(2024, time.February))
	assert.True(t, schedule.Payments[1].EndingBalance.Equal(bs.LoansPayable))

	// Before any payment is due the full principal is owed.
	bs = engine.BuildBalanceSheet(snap, month(2023, time.December))
	assert.True(t, loan.Principal.Equal(bs.LoansPayable))
}

func TestBuildBalanceSheet_SalesTaxAccumulates(t *testing.T) {
	cats := append(fixtureCategories(), domain.Category{
		CategoryID: "salestax", Name: "Sales Tax", IsSalesTax: true,
	})
	jan := month(2024, time.January)
	feb := month(2024, time.February)
	snap := domain.Snapshot{
		Transactions: []domain.Transaction{
			payable("t1", "salestax", 80, jan, jan, domain.StatusPaid),
			payable("t2", "salestax", 70, feb, feb, domain.StatusPaid),
		},
		Categories:   cats,
		CurrentMonth: feb,
		TaxMode:      domain.TaxModePassthrough,
	}

	bs := engine.BuildBalanceSheet(snap, jan)
	assert.True(t, dec(80).Equal(bs.SalesTaxPayable))

	bs = engine.BuildBalanceSheet(snap, feb)
	assert.True(t, dec(150).Equal(bs.SalesTaxPayable))
}

func TestBuildBalanceSheet_EquityConfigContributions(t *testing.T) {
	snap := domain.Snapshot{
		Categories: fixtureCategories(),
		Equity: domain.EquityConfig{
			CommonStockPar:    decimal.NewFromFloat(0.01),
			CommonStockShares: 100000,
			APIC:              decimal.NewFromInt(9000),
		},
		CurrentMonth: month(2024, time.January),
		TaxMode:      domain.TaxModePassthrough,
	}

	bs := engine.BuildBalanceSheet(snap, month(2024, time.January))
	assert.True(t, dec(1000).Equal(bs.CommonStock))
	assert.True(t, dec(9000).Equal(bs.APIC))
	assert.True(t, dec(10000).Equal(bs.TotalEquity))
	// No offsetting asset was recorded, so the signed difference reports it.
	assert.False(t, bs.Balanced)
	assert.True(t, dec(-10000).Equal(bs.Difference))
}
