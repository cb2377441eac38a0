package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// overrideService implements the OverrideSvcFacade interface
type overrideService struct {
	BaseService
	overrideRepo portsrepo.OverrideRepository
	categoryRepo portsrepo.CategoryRepository
}

// NewOverrideService creates a new override service
func NewOverrideService(overrideRepo portsrepo.OverrideRepository, categoryRepo portsrepo.CategoryRepository) portssvc.OverrideSvcFacade {
	return &overrideService{overrideRepo: overrideRepo, categoryRepo: categoryRepo}
}

var _ portssvc.OverrideSvcFacade = (*overrideService)(nil)

func (s *overrideService) PutOverride(ctx context.Context, req dto.PutOverrideRequest) (*domain.Override, error) {
	// The income-tax sentinel is not a real category, so it skips the
	// existence check.
	if req.CategoryID != domain.TaxOverrideCategoryID {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
			return nil, fmt.Errorf("invalid category: %w", err)
		}
	}

	month, err := domain.ParseMonth(req.Month)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	override := domain.Override{
		CategoryID: req.CategoryID,
		Month:      month,
		Amount:     req.Amount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.overrideRepo.PutOverride(ctx, override); err != nil {
		s.LogError(ctx, err, "Failed to put override",
			slog.String("category_id", req.CategoryID),
			slog.String("month", month.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Override set",
		slog.String("category_id", req.CategoryID),
		slog.String("month", month.String()))
	return &override, nil
}

func (s *overrideService) DeleteOverride(ctx context.Context, categoryID string, monthStr string) error {
	month, err := domain.ParseMonth(monthStr)
	if err != nil {
		return err
	}
	if err := s.overrideRepo.DeleteOverride(ctx, categoryID, month); err != nil {
		s.LogError(ctx, err, "Failed to delete override",
			slog.String("category_id", categoryID),
			slog.String("month", month.String()))
		return err
	}
	s.LogInfo(ctx, "Override cleared",
		slog.String("category_id", categoryID),
		slog.String("month", month.String()))
	return nil
}

func (s *overrideService) ListOverrides(ctx context.Context) ([]domain.Override, error) {
	overrides, err := s.overrideRepo.ListOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overrides: %w", err)
	}
	if overrides == nil {
		return []domain.Override{}, nil
	}
	return overrides, nil
}

// equityService implements the EquitySvcFacade interface
type equityService struct {
	BaseService
	equityRepo portsrepo.EquityRepository
}

// NewEquityService creates a new equity service
func NewEquityService(equityRepo portsrepo.EquityRepository) portssvc.EquitySvcFacade {
	return &equityService{equityRepo: equityRepo}
}

var _ portssvc.EquitySvcFacade = (*equityService)(nil)

func (s *equityService) GetEquityConfig(ctx context.Context) (*domain.EquityConfig, error) {
	cfg, err := s.equityRepo.GetEquityConfig(ctx)
	if err != nil {
		// A fresh ledger has no saved configuration yet.
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.EquityConfig{}, nil
		}
		return nil, fmt.Errorf("failed to get equity config: %w", err)
	}
	return cfg, nil
}

func (s *equityService) UpdateEquityConfig(ctx context.Context, req dto.UpdateEquityConfigRequest) (*domain.EquityConfig, error) {
	if req.CommonStockPar.IsNegative() || req.APIC.IsNegative() {
		return nil, fmt.Errorf("%w: equity amounts cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now()
	cfg := domain.EquityConfig{
		CommonStockPar:    req.CommonStockPar,
		CommonStockShares: req.CommonStockShares,
		APIC:              req.APIC,
		SeedExpectedDate:  req.SeedExpectedDate,
		SeedReceivedDate:  req.SeedReceivedDate,
		APICExpectedDate:  req.APICExpectedDate,
		APICReceivedDate:  req.APICReceivedDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.equityRepo.SaveEquityConfig(ctx, cfg); err != nil {
		s.LogError(ctx, err, "Failed to save equity config")
		return nil, err
	}

	s.LogInfo(ctx, "Equity config updated")
	return &cfg, nil
}
