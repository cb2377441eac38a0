package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAssetRepository struct {
	BaseRepository
}

// newPgxAssetRepository creates a new repository for fixed assets.
func newPgxAssetRepository(pool *pgxpool.Pool) portsrepo.AssetRepository {
	return &PgxAssetRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.AssetRepository = (*PgxAssetRepository)(nil)

const assetColumns = `
	asset_id, name, purchase_cost, salvage_value, useful_life_months,
	depreciation_method, purchase_date, notes, created_at, last_updated_at
`

func scanAsset(row pgx.Row) (domain.FixedAsset, error) {
	var asset domain.FixedAsset
	err := row.Scan(
		&asset.AssetID,
		&asset.Name,
		&asset.PurchaseCost,
		&asset.SalvageValue,
		&asset.UsefulLifeMonths,
		&asset.DepreciationMethod,
		&asset.PurchaseDate,
		&asset.Notes,
		&asset.CreatedAt,
		&asset.LastUpdatedAt,
	)
	return asset, err
}

func (r *PgxAssetRepository) SaveAsset(ctx context.Context, asset domain.FixedAsset) error {
	query := `
		INSERT INTO fixed_assets (` + assetColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		asset.AssetID,
		asset.Name,
		asset.PurchaseCost,
		asset.SalvageValue,
		asset.UsefulLifeMonths,
		asset.DepreciationMethod,
		asset.PurchaseDate,
		asset.Notes,
		asset.CreatedAt,
		asset.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save asset %s: %w", asset.AssetID, err)
	}
	return nil
}

func (r *PgxAssetRepository) FindAssetByID(ctx context.Context, assetID string) (*domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets WHERE asset_id = $1;`

	asset, err := scanAsset(r.Pool.QueryRow(ctx, query, assetID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find asset %s: %w", assetID, err)
	}
	return &asset, nil
}

func (r *PgxAssetRepository) ListAssets(ctx context.Context) ([]domain.FixedAsset, error) {
	query := `SELECT ` + assetColumns + ` FROM fixed_assets ORDER BY purchase_date, asset_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query assets: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FixedAsset, error) {
		return scanAsset(row)
	})
}

func (r *PgxAssetRepository) UpdateAsset(ctx context.Context, asset domain.FixedAsset) error {
	query := `
		UPDATE fixed_assets SET
			name = $2,
			purchase_cost = $3,
			salvage_value = $4,
			useful_life_months = $5,
			depreciation_method = $6,
			purchase_date = $7,
			notes = $8,
			last_updated_at = $9
		WHERE asset_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		asset.AssetID,
		asset.Name,
		asset.PurchaseCost,
		asset.SalvageValue,
		asset.UsefulLifeMonths,
		asset.DepreciationMethod,
		asset.PurchaseDate,
		asset.Notes,
		asset.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset %s: %w", asset.AssetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxAssetRepository) DeleteAsset(ctx context.Context, assetID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM fixed_assets WHERE asset_id = $1;`, assetID)
	if err != nil {
		return fmt.Errorf("failed to delete asset %s: %w", assetID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
