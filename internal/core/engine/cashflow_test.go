package engine_test

import (
	"testing"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/core/engine"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cashFixture() domain.Snapshot {
	jan := month(2024, time.January)
	feb := month(2024, time.February)
	return domain.Snapshot{
		Transactions: []domain.Transaction{
			receivable("t1", "sales", 1000, jan, jan, domain.StatusReceived),
			payable("t2", "rent", 300, jan, jan, domain.StatusPaid),
			receivable("t3", "sales", 400, feb, feb, domain.StatusReceived),
			payable("t4", "rent", 300, feb, feb, domain.StatusPaid),
			receivable("t5", "sales", 999, feb, domain.Month{}, domain.StatusPending), // no cash moved
		},
		Categories:   fixtureCategories(),
		CurrentMonth: month(2024, time.February),
		TaxMode:      domain.TaxModePassthrough,
	}
}

func TestBuildCashFlow_RunningBalanceChain(t *testing.T) {
	stmt := engine.BuildCashFlow(cashFixture(), month(2024, time.January), month(2024, time.March))

	require.Len(t, stmt.ByMonth, 3)

	jan := stmt.ByMonth[0]
	assert.True(t, jan.BeginningBalance.IsZero(), "first month in range begins at zero")
	assert.True(t, dec(1000).Equal(jan.Receipts))
	assert.True(t, dec(300).Equal(jan.Payments))
	assert.True(t, dec(700).Equal(jan.NetCashFlow))
	assert.True(t, dec(700).Equal(jan.EndingBalance))

	feb := stmt.ByMonth[1]
	assert.True(t, dec(700).Equal(feb.BeginningBalance), "beginning = prior ending")
	assert.True(t, dec(100).Equal(feb.NetCashFlow))
	assert.True(t, dec(800).Equal(feb.EndingBalance))

	// March is a future month: receipts and payments project from run rate.
	mar := stmt.ByMonth[2]
	assert.True(t, dec(800).Equal(mar.BeginningBalance))
	assert.True(t, dec(700).Equal(mar.Receipts), "mean of 1000 and 400")
	assert.True(t, dec(300).Equal(mar.Payments))
}

func TestBuildCashFlow_TotalsExcludeRunningBalances(t *testing.T) {
	stmt := engine.BuildCashFlow(cashFixture(), month(2024, time.January), month(2024, time.February))

	assert.True(t, dec(1400).Equal(stmt.TotalReceipts))
	assert.True(t, dec(600).Equal(stmt.TotalPayments))
	assert.True(t, dec(800).Equal(stmt.TotalNet))
}

func TestBuildCashFlow_OverrideAppliesToCell(t *testing.T) {
	snap := cashFixture()
	snap.Overrides = domain.OverrideSet{
		{CategoryID: "sales", Month: month(2024, time.January)}: dec(1200),
	}

	stmt := engine.BuildCashFlow(snap, month(2024, time.January), month(2024, time.February))
	assert.True(t, dec(1200).Equal(stmt.ByMonth[0].Receipts))
	assert.True(t, dec(900).Equal(stmt.ByMonth[0].EndingBalance))
	assert.True(t, dec(1600).Equal(stmt.TotalReceipts))
}

func TestBuildCashFlow_EmptyRangeForInvertedBounds(t *testing.T) {
	stmt := engine.BuildCashFlow(cashFixture(), month(2024, time.March), month(2024, time.January))
	assert.Empty(t, stmt.ByMonth)
	assert.True(t, stmt.TotalNet.IsZero())
}
