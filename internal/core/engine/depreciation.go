// Package engine implements the financial reporting and projection
// engine: pure, deterministic computations that turn a snapshot of
// ledger records into schedules and statements. Nothing in this package
// performs I/O or mutates its inputs; every function is safe to call
// concurrently on independent snapshots.
package engine

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// DepreciationSchedule generates the ordered month-by-month depreciation
// schedule for one fixed asset, from the purchase month through the
// month the asset is fully depreciated. Assets with method NONE produce
// an empty schedule. All amounts are rounded to the cent; the schedule
// reconciles rounding remainder into the final period so the lifetime
// total is exact.
func DepreciationSchedule(asset domain.FixedAsset) []domain.ScheduleEntry {
	switch asset.DepreciationMethod {
	case domain.StraightLine:
		return straightLineSchedule(asset)
	case domain.DoubleDeclining:
		return doubleDecliningSchedule(asset)
	default:
		return nil
	}
}

func straightLineSchedule(asset domain.FixedAsset) []domain.ScheduleEntry {
	base := asset.DepreciableBase()
	life := asset.UsefulLifeMonths
	if life <= 0 || base.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	// Round the per-month amount toward zero so the final month absorbs
	// a non-negative remainder.
	monthly := base.Div(decimal.NewFromInt(int64(life))).RoundDown(2)
	start := domain.MonthOf(asset.PurchaseDate)

	entries := make([]domain.ScheduleEntry, 0, life)
	for i := 0; i < life-1; i++ {
		entries = append(entries, domain.ScheduleEntry{Month: start.AddMonths(i), Amount: monthly})
	}
	// Final month absorbs the rounding remainder so the cumulative total
	// equals exactly purchase_cost - salvage_value.
	final := base.Sub(monthly.Mul(decimal.NewFromInt(int64(life - 1))))
	entries = append(entries, domain.ScheduleEntry{Month: start.AddMonths(life - 1), Amount: final})
	return entries
}

func doubleDecliningSchedule(asset domain.FixedAsset) []domain.ScheduleEntry {
	life := asset.UsefulLifeMonths
	if life <= 0 || asset.DepreciableBase().LessThanOrEqual(decimal.Zero) {
		return nil
	}

	lifeDec := decimal.NewFromInt(int64(life))
	start := domain.MonthOf(asset.PurchaseDate)
	bookValue := asset.PurchaseCost

	var entries []domain.ScheduleEntry
	for i := 0; i < life; i++ {
		amount := bookValue.Mul(two).Div(lifeDec).Round(2)
		// Book value never drops below salvage value.
		if remaining := bookValue.Sub(asset.SalvageValue); amount.GreaterThan(remaining) {
			amount = remaining
		}
		if amount.LessThanOrEqual(decimal.Zero) {
			break
		}
		entries = append(entries, domain.ScheduleEntry{Month: start.AddMonths(i), Amount: amount})
		bookValue = bookValue.Sub(amount)
	}
	return entries
}

// AccumulatedDepreciation sums a schedule's entries for months on or
// before asOf.
func AccumulatedDepreciation(schedule []domain.ScheduleEntry, asOf domain.Month) decimal.Decimal {
	total := decimal.Zero
	for _, e := range schedule {
		if !e.Month.After(asOf) {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// DepreciationForMonth sums depreciation across all assets for one month.
func DepreciationForMonth(assets []domain.FixedAsset, month domain.Month) decimal.Decimal {
	total := decimal.Zero
	for _, asset := range assets {
		for _, e := range DepreciationSchedule(asset) {
			if e.Month == month {
				total = total.Add(e.Amount)
			}
		}
	}
	return total
}
