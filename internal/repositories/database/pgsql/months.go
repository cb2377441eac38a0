package pgsql

import "github.com/finbooks/finbooks_backend/internal/core/domain"

// monthParam renders a month for a nullable CHAR(7) column.
func monthParam(m domain.Month) *string {
	if m.IsZero() {
		return nil
	}
	s := m.String()
	return &s
}

// scanMonth parses a nullable CHAR(7) column back into a month.
func scanMonth(s *string) (domain.Month, error) {
	if s == nil || *s == "" {
		return domain.Month{}, nil
	}
	return domain.ParseMonth(*s)
}
