package dto

import "github.com/finbooks/finbooks_backend/internal/core/domain"

// ParseOptionalMonth parses a "YYYY-MM" string, treating "" as the
// absent month. Malformed values surface ErrInvalidMonthFormat.
func ParseOptionalMonth(s string) (domain.Month, error) {
	if s == "" {
		return domain.Month{}, nil
	}
	return domain.ParseMonth(s)
}

// monthString renders a possibly-absent month for responses.
func monthString(m domain.Month) string {
	if m.IsZero() {
		return ""
	}
	return m.String()
}

func monthStrings(months []domain.Month) []string {
	out := make([]string, 0, len(months))
	for _, m := range months {
		out = append(out, m.String())
	}
	return out
}
