package domain_test

import (
	"testing"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Month
		wantErr bool
	}{
		{"valid", "2024-03", domain.Month{Year: 2024, Mon: time.March}, false},
		{"valid december", "1999-12", domain.Month{Year: 1999, Mon: time.December}, false},
		{"month out of range", "2024-13", domain.Month{}, true},
		{"missing month", "2024", domain.Month{}, true},
		{"full date", "2024-03-01", domain.Month{}, true},
		{"garbage", "march 2024", domain.Month{}, true},
		{"empty", "", domain.Month{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseMonth(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidMonthFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMonth_RoundTripString(t *testing.T) {
	m := domain.Month{Year: 2024, Mon: time.July}
	parsed, err := domain.ParseMonth(m.String())
	require.NoError(t, err)
	assert.Equal(t, m, parsed)

	assert.Equal(t, "", domain.Month{}.String())
}

func TestMonth_AddMonths(t *testing.T) {
	jan := domain.Month{Year: 2024, Mon: time.January}

	assert.Equal(t, domain.Month{Year: 2024, Mon: time.December}, jan.AddMonths(11))
	assert.Equal(t, domain.Month{Year: 2025, Mon: time.January}, jan.AddMonths(12))
	assert.Equal(t, domain.Month{Year: 2023, Mon: time.December}, jan.AddMonths(-1))
	assert.Equal(t, jan, jan.AddMonths(0))
}

func TestMonth_Ordering(t *testing.T) {
	jan := domain.Month{Year: 2024, Mon: time.January}
	feb := domain.Month{Year: 2024, Mon: time.February}

	assert.True(t, jan.Before(feb))
	assert.True(t, feb.After(jan))
	assert.Equal(t, 0, jan.Compare(jan))
	assert.Equal(t, 1, domain.MonthsBetween(jan, feb))
	assert.Equal(t, -13, domain.MonthsBetween(feb, domain.Month{Year: 2023, Mon: time.January}))
}

func TestMonthRange(t *testing.T) {
	jan := domain.Month{Year: 2024, Mon: time.January}
	mar := domain.Month{Year: 2024, Mon: time.March}

	months := domain.MonthRange(jan, mar)
	require.Len(t, months, 3)
	assert.Equal(t, jan, months[0])
	assert.Equal(t, mar, months[2])

	assert.Len(t, domain.MonthRange(jan, jan), 1)
	assert.Nil(t, domain.MonthRange(mar, jan))
}
