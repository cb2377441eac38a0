package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// OverrideRepository defines persistence operations for statement cell
// overrides.
type OverrideRepository interface {
	// PutOverride inserts or replaces the override for its (category, month) key.
	PutOverride(ctx context.Context, override domain.Override) error
	DeleteOverride(ctx context.Context, categoryID string, month domain.Month) error
	ListOverrides(ctx context.Context) ([]domain.Override, error)
}

// EquityRepository defines persistence operations for the equity
// configuration singleton.
type EquityRepository interface {
	GetEquityConfig(ctx context.Context) (*domain.EquityConfig, error)
	SaveEquityConfig(ctx context.Context, cfg domain.EquityConfig) error
}
