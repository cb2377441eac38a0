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

type PgxOverrideRepository struct {
	BaseRepository
}

// newPgxOverrideRepository creates a new repository for statement cell
// overrides.
func newPgxOverrideRepository(pool *pgxpool.Pool) portsrepo.OverrideRepository {
	return &PgxOverrideRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.OverrideRepository = (*PgxOverrideRepository)(nil)

func (r *PgxOverrideRepository) PutOverride(ctx context.Context, override domain.Override) error {
	query := `
		INSERT INTO overrides (category_id, month, amount, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (category_id, month) DO UPDATE SET
			amount = EXCLUDED.amount,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		override.CategoryID,
		override.Month.String(),
		override.Amount,
		override.CreatedAt,
		override.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to put override %s/%s: %w", override.CategoryID, override.Month, err)
	}
	return nil
}

func (r *PgxOverrideRepository) DeleteOverride(ctx context.Context, categoryID string, month domain.Month) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM overrides WHERE category_id = $1 AND month = $2;`,
		categoryID, month.String(),
	)
	if err != nil {
		return fmt.Errorf("failed to delete override %s/%s: %w", categoryID, month, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOverrideRepository) ListOverrides(ctx context.Context) ([]domain.Override, error) {
	query := `
		SELECT category_id, month, amount, created_at, last_updated_at
		FROM overrides ORDER BY month, category_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query overrides: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Override, error) {
		var (
			ov       domain.Override
			monthStr string
		)
		if err := row.Scan(&ov.CategoryID, &monthStr, &ov.Amount, &ov.CreatedAt, &ov.LastUpdatedAt); err != nil {
			return ov, err
		}
		month, err := domain.ParseMonth(monthStr)
		if err != nil {
			return ov, fmt.Errorf("invalid month %q for override %s: %w", monthStr, ov.CategoryID, err)
		}
		ov.Month = month
		return ov, nil
	})
}

type PgxEquityRepository struct {
	BaseRepository
}

// newPgxEquityRepository creates a new repository for the single-row
// equity configuration.
func newPgxEquityRepository(pool *pgxpool.Pool) portsrepo.EquityRepository {
	return &PgxEquityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.EquityRepository = (*PgxEquityRepository)(nil)

func (r *PgxEquityRepository) GetEquityConfig(ctx context.Context) (*domain.EquityConfig, error) {
	query := `
		SELECT common_stock_par, common_stock_shares, apic,
			seed_expected_date, seed_received_date,
			apic_expected_date, apic_received_date,
			created_at, last_updated_at
		FROM equity_config WHERE id = 1;
	`
	var cfg domain.EquityConfig
	err := r.Pool.QueryRow(ctx, query).Scan(
		&cfg.CommonStockPar,
		&cfg.CommonStockShares,
		&cfg.APIC,
		&cfg.SeedExpectedDate,
		&cfg.SeedReceivedDate,
		&cfg.APICExpectedDate,
		&cfg.APICReceivedDate,
		&cfg.CreatedAt,
		&cfg.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find equity config: %w", err)
	}
	return &cfg, nil
}

func (r *PgxEquityRepository) SaveEquityConfig(ctx context.Context, cfg domain.EquityConfig) error {
	query := `
		INSERT INTO equity_config (
			id, common_stock_par, common_stock_shares, apic,
			seed_expected_date, seed_received_date,
			apic_expected_date, apic_received_date,
			created_at, last_updated_at
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			common_stock_par = EXCLUDED.common_stock_par,
			common_stock_shares = EXCLUDED.common_stock_shares,
			apic = EXCLUDED.apic,
			seed_expected_date = EXCLUDED.seed_expected_date,
			seed_received_date = EXCLUDED.seed_received_date,
			apic_expected_date = EXCLUDED.apic_expected_date,
			apic_received_date = EXCLUDED.apic_received_date,
			last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err := r.Pool.Exec(ctx, query,
		cfg.CommonStockPar,
		cfg.CommonStockShares,
		cfg.APIC,
		cfg.SeedExpectedDate,
		cfg.SeedReceivedDate,
		cfg.APICExpectedDate,
		cfg.APICReceivedDate,
		cfg.CreatedAt,
		cfg.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save equity config: %w", err)
	}
	return nil
}
