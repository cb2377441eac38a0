package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// AssetReaderSvc defines read operations for fixed assets.
type AssetReaderSvc interface {
	// GetAssetByID retrieves a specific asset by its unique identifier.
	GetAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)

	// ListAssets retrieves all fixed assets.
	ListAssets(ctx context.Context) ([]domain.FixedAsset, error)
}

// AssetWriterSvc defines write operations for fixed assets.
type AssetWriterSvc interface {
	// CreateAsset validates and persists a new fixed asset.
	CreateAsset(ctx context.Context, req dto.CreateAssetRequest) (*domain.FixedAsset, error)

	// UpdateAsset updates an existing asset's details.
	UpdateAsset(ctx context.Context, assetID string, req dto.UpdateAssetRequest) (*domain.FixedAsset, error)

	// DeleteAsset removes a fixed asset.
	DeleteAsset(ctx context.Context, assetID string) error
}

// AssetCalculatorSvc defines calculation operations for fixed assets.
type AssetCalculatorSvc interface {
	// DepreciationSchedule computes the full monthly depreciation schedule
	// for one asset.
	DepreciationSchedule(ctx context.Context, assetID string) ([]domain.ScheduleEntry, error)
}

// AssetSvcFacade combines all asset-related service interfaces.
type AssetSvcFacade interface {
	AssetReaderSvc
	AssetWriterSvc
	AssetCalculatorSvc
}
