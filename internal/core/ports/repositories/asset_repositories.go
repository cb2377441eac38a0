package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// AssetRepository defines persistence operations for fixed assets.
type AssetRepository interface {
	SaveAsset(ctx context.Context, asset domain.FixedAsset) error
	FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error)
	ListAssets(ctx context.Context) ([]domain.FixedAsset, error)
	UpdateAsset(ctx context.Context, asset domain.FixedAsset) error
	DeleteAsset(ctx context.Context, assetID string) error
}
