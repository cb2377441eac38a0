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

func newAsset(cost, salvage float64, life int, method domain.DepreciationMethod) domain.FixedAsset {
	return domain.FixedAsset{
		AssetID:            "asset-1",
		Name:               "Test Asset",
		PurchaseCost:       decimal.NewFromFloat(cost),
		SalvageValue:       decimal.NewFromFloat(salvage),
		UsefulLifeMonths:   life,
		DepreciationMethod: method,
		PurchaseDate:       time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestDepreciationSchedule_StraightLine_EvenLife(t *testing.T) {
	// Asset cost 12000, salvage 0, 12-month life: 1000.00 per month.
	schedule := engine.DepreciationSchedule(newAsset(12000, 0, 12, domain.StraightLine))

	require.Len(t, schedule, 12)
	for i, entry := range schedule {
		assert.True(t, decimal.NewFromInt(1000).Equal(entry.Amount), "month %d: got %s", i+1, entry.Amount)
	}
	assert.Equal(t, domain.Month{Year: 2024, Mon: time.January}, schedule[0].Month)
	assert.Equal(t, domain.Month{Year: 2024, Mon: time.December}, schedule[11].Month)
}

func TestDepreciationSchedule_StraightLine_RoundingAbsorbedInFinalMonth(t *testing.T) {
	// 1000 over 3 months does not divide evenly in cents.
	schedule := engine.DepreciationSchedule(newAsset(1000, 0, 3, domain.StraightLine))

	require.Len(t, schedule, 3)
	assert.True(t, decimal.NewFromFloat(333.33).Equal(schedule[0].Amount))
	assert.True(t, decimal.NewFromFloat(333.33).Equal(schedule[1].Amount))
	assert.True(t, decimal.NewFromFloat(333.34).Equal(schedule[2].Amount))
}

func TestDepreciationSchedule_StraightLine_LifetimeTotalExact(t *testing.T) {
	tests := []struct {
		name    string
		cost    float64
		salvage float64
		life    int
	}{
		{"no salvage, uneven division", 9999.97, 0, 7},
		{"with salvage", 15000, 1500, 36},
		{"one month", 500, 0, 1},
		{"long life", 100000, 12345.67, 120},
		{"monthly amount rounds to zero", 5.00, 0, 1000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := newAsset(tt.cost, tt.salvage, tt.life, domain.StraightLine)
			schedule := engine.DepreciationSchedule(asset)

			require.Len(t, schedule, tt.life)
			total := decimal.Zero
			for _, entry := range schedule {
				assert.False(t, entry.Amount.IsNegative(), "no month may be negative")
				total = total.Add(entry.Amount)
			}
			assert.True(t, asset.DepreciableBase().Equal(total),
				"lifetime total %s != depreciable base %s", total, asset.DepreciableBase())
		})
	}
}

func TestDepreciationSchedule_DoubleDeclining_BookValueFloorsAtSalvage(t *testing.T) {
	asset := newAsset(12000, 2000, 12, domain.DoubleDeclining)
	schedule := engine.DepreciationSchedule(asset)

	require.NotEmpty(t, schedule)
	assert.LessOrEqual(t, len(schedule), asset.UsefulLifeMonths)

	bookValue := asset.PurchaseCost
	for _, entry := range schedule {
		bookValue = bookValue.Sub(entry.Amount)
		assert.True(t, bookValue.GreaterThanOrEqual(asset.SalvageValue),
			"book value %s dropped below salvage %s", bookValue, asset.SalvageValue)
	}
	// The schedule ends exactly at salvage for this fixture.
	assert.True(t, bookValue.Equal(asset.SalvageValue))
}

func TestDepreciationSchedule_DoubleDeclining_FirstMonthIsTwiceStraightLineRate(t *testing.T) {
	schedule := engine.DepreciationSchedule(newAsset(12000, 0, 12, domain.DoubleDeclining))

	require.NotEmpty(t, schedule)
	// 12000 * 2/12 = 2000 in the first month.
	assert.True(t, decimal.NewFromInt(2000).Equal(schedule[0].Amount))
}

func TestDepreciationSchedule_None(t *testing.T) {
	assert.Empty(t, engine.DepreciationSchedule(newAsset(12000, 0, 12, domain.NoDepreciation)))
}

func TestAccumulatedDepreciation(t *testing.T) {
	asset := newAsset(12000, 0, 12, domain.StraightLine)
	schedule := engine.DepreciationSchedule(asset)

	asOf := domain.Month{Year: 2024, Mon: time.June} // six months in
	assert.True(t, decimal.NewFromInt(6000).Equal(engine.AccumulatedDepreciation(schedule, asOf)))

	before := domain.Month{Year: 2023, Mon: time.December}
	assert.True(t, engine.AccumulatedDepreciation(schedule, before).IsZero())

	after := domain.Month{Year: 2030, Mon: time.January}
	assert.True(t, decimal.NewFromInt(12000).Equal(engine.AccumulatedDepreciation(schedule, after)))
}

func TestDepreciationForMonth_SumsAcrossAssets(t *testing.T) {
	assets := []domain.FixedAsset{
		newAsset(12000, 0, 12, domain.StraightLine),
		newAsset(2400, 0, 24, domain.StraightLine),
	}
	month := domain.Month{Year: 2024, Mon: time.March}
	// 1000 + 100 per month while both schedules are live.
	assert.True(t, decimal.NewFromInt(1100).Equal(engine.DepreciationForMonth(assets, month)))
}
