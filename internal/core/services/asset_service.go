package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/core/engine"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/google/uuid"
)

// assetService implements the AssetSvcFacade interface
type assetService struct {
	BaseService
	assetRepo portsrepo.AssetRepository
}

// NewAssetService creates a new asset service
func NewAssetService(assetRepo portsrepo.AssetRepository) portssvc.AssetSvcFacade {
	return &assetService{assetRepo: assetRepo}
}

var _ portssvc.AssetSvcFacade = (*assetService)(nil)

func (s *assetService) CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.FixedAsset, error) {
	now := time.Now()
	asset := domain.FixedAsset{
		AssetID:            uuid.NewString(),
		Name:               req.Name,
		PurchaseCost:       req.PurchaseCost,
		SalvageValue:       req.SalvageValue,
		UsefulLifeMonths:   req.UsefulLifeMonths,
		DepreciationMethod: req.DepreciationMethod,
		PurchaseDate:       req.PurchaseDate,
		Notes:              req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := asset.Validate(); err != nil {
		return nil, err
	}

	if err := s.assetRepo.SaveAsset(ctx, asset); err != nil {
		s.LogError(ctx, err, "Failed to save asset",
			slog.String("asset_id", asset.AssetID))
		return nil, err
	}

	s.LogInfo(ctx, "Asset created successfully",
		slog.String("asset_id", asset.AssetID),
		slog.String("name", asset.Name))
	return &asset, nil
}

func (s *assetService) GetAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to get asset: %w", err)
	}
	return asset, nil
}

func (s *assetService) ListAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	assets, err := s.assetRepo.ListAssets(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	if assets == nil {
		return []domain.FixedAsset{}, nil
	}
	return assets, nil
}

func (s *assetService) UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest) (*domain.FixedAsset, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset for update: %w", err)
	}

	if req.Name != nil {
		asset.Name = *req.Name
	}
	if req.PurchaseCost != nil {
		asset.PurchaseCost = *req.PurchaseCost
	}
	if req.SalvageValue != nil {
		asset.SalvageValue = *req.SalvageValue
	}
	if req.UsefulLifeMonths != nil {
		asset.UsefulLifeMonths = *req.UsefulLifeMonths
	}
	if req.DepreciationMethod != nil {
		asset.DepreciationMethod = *req.DepreciationMethod
	}
	if req.PurchaseDate != nil {
		asset.PurchaseDate = *req.PurchaseDate
	}
	if req.Notes != nil {
		asset.Notes = *req.Notes
	}
	asset.LastUpdatedAt = time.Now()

	if err := asset.Validate(); err != nil {
		return nil, err
	}

	if err := s.assetRepo.UpdateAsset(ctx, *asset); err != nil {
		s.LogError(ctx, err, "Failed to update asset",
			slog.String("asset_id", assetID))
		return nil, err
	}

	s.LogInfo(ctx, "Asset updated successfully",
		slog.String("asset_id", assetID))
	return asset, nil
}

func (s *assetService) DeleteAsset(ctx context.Context, assetID string) error {
	if err := s.assetRepo.DeleteAsset(ctx, assetID); err != nil {
		s.LogError(ctx, err, "Failed to delete asset",
			slog.String("asset_id", assetID))
		return err
	}
	s.LogInfo(ctx, "Asset deleted successfully",
		slog.String("asset_id", assetID))
	return nil
}

func (s *assetService) DepreciationSchedule(ctx context.Context, assetID string) ([]domain.ScheduleEntry, error) {
	asset, err := s.assetRepo.FindAssetByID(ctx, assetID)
	if err != nil {
		return nil, fmt.Errorf("failed to find asset for schedule: %w", err)
	}
	return engine.DepreciationSchedule(*asset), nil
}
