package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// OverrideSvcFacade defines operations for statement cell overrides.
type OverrideSvcFacade interface {
	// PutOverride inserts or replaces the override for its (category, month) key.
	PutOverride(ctx context.Context, req dto.PutOverrideRequest) (*domain.Override, error)

	// DeleteOverride removes the override for a (category, month) key.
	DeleteOverride(ctx context.Context, categoryID string, month string) error

	// ListOverrides retrieves all overrides.
	ListOverrides(ctx context.Context) ([]domain.Override, error)
}

// EquitySvcFacade defines operations for the equity configuration singleton.
type EquitySvcFacade interface {
	// GetEquityConfig retrieves the current equity configuration.
	GetEquityConfig(ctx context.Context) (*domain.EquityConfig, error)

	// UpdateEquityConfig replaces the equity configuration.
	UpdateEquityConfig(ctx context.Context, req dto.UpdateEquityConfigRequest) (*domain.EquityConfig, error)
}
