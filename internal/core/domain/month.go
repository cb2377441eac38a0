package domain

import (
	"fmt"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
)

// Month is a calendar year-month. The zero value is "no month"
// (absent month_due, month_paid, etc.).
type Month struct {
	Year int
	Mon  time.Month
}

// ParseMonth parses a "YYYY-MM" string into a Month.
// Anything else is rejected with apperrors.ErrInvalidMonthFormat.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidMonthFormat, s)
	}
	return Month{Year: t.Year(), Mon: t.Month()}, nil
}

// MonthOf returns the Month containing the given date.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Mon: t.Month()}
}

// IsZero reports whether m is the absent month.
func (m Month) IsZero() bool {
	return m.Year == 0 && m.Mon == 0
}

// String renders the month as "YYYY-MM", or "" for the absent month.
func (m Month) String() string {
	if m.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Mon))
}

// index is the month count since year 0, used for ordering and arithmetic.
func (m Month) index() int {
	return m.Year*12 + int(m.Mon) - 1
}

// AddMonths returns the month n months after m (n may be negative).
func (m Month) AddMonths(n int) Month {
	idx := m.index() + n
	return Month{Year: idx / 12, Mon: time.Month(idx%12 + 1)}
}

// Compare returns -1, 0, or 1 if m is before, equal to, or after other.
func (m Month) Compare(other Month) int {
	switch {
	case m.index() < other.index():
		return -1
	case m.index() > other.index():
		return 1
	default:
		return 0
	}
}

// Before reports whether m is strictly before other.
func (m Month) Before(other Month) bool { return m.Compare(other) < 0 }

// After reports whether m is strictly after other.
func (m Month) After(other Month) bool { return m.Compare(other) > 0 }

// MonthsBetween returns the number of whole months from m to other
// (positive when other is later).
func MonthsBetween(m, other Month) int {
	return other.index() - m.index()
}

// MonthRange returns the months from 'from' through 'to' inclusive, in
// chronological order. An inverted range yields nil.
func MonthRange(from, to Month) []Month {
	if from.After(to) {
		return nil
	}
	months := make([]Month, 0, MonthsBetween(from, to)+1)
	for m := from; !m.After(to); m = m.AddMonths(1) {
		months = append(months, m)
	}
	return months
}
