package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for categories.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepository {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.CategoryRepository = (*PgxCategoryRepository)(nil)

const categoryColumns = `
	category_id, name, folder_id, is_monthly, default_amount, default_type,
	cashflow_sort_order, is_cogs, is_depreciation, is_sales_tax,
	hidden_from_pl, created_at, last_updated_at
`

func scanCategory(row pgx.Row) (domain.Category, error) {
	var cat domain.Category
	var folderID, defaultType *string

	err := row.Scan(
		&cat.CategoryID,
		&cat.Name,
		&folderID,
		&cat.IsMonthly,
		&cat.DefaultAmount,
		&defaultType,
		&cat.CashflowSortOrder,
		&cat.IsCOGS,
		&cat.IsDepreciation,
		&cat.IsSalesTax,
		&cat.HiddenFromPL,
		&cat.CreatedAt,
		&cat.LastUpdatedAt,
	)
	if err != nil {
		return cat, err
	}
	if folderID != nil {
		cat.FolderID = *folderID
	}
	if defaultType != nil {
		cat.DefaultType = domain.TransactionType(*defaultType)
	}
	return cat, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	query := `
		INSERT INTO categories (` + categoryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		nullableString(category.FolderID),
		category.IsMonthly,
		category.DefaultAmount,
		nullableString(string(category.DefaultType)),
		category.CashflowSortOrder,
		category.IsCOGS,
		category.IsDepreciation,
		category.IsSalesTax,
		category.HiddenFromPL,
		category.CreatedAt,
		category.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save category %s: %w", category.CategoryID, err)
	}
	return nil
}

func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE category_id = $1;`

	cat, err := scanCategory(r.Pool.QueryRow(ctx, query, categoryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	return &cat, nil
}

func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY cashflow_sort_order, name;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Category, error) {
		return scanCategory(row)
	})
}

func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	query := `
		UPDATE categories SET
			name = $2,
			folder_id = $3,
			is_monthly = $4,
			default_amount = $5,
			default_type = $6,
			cashflow_sort_order = $7,
			is_cogs = $8,
			is_depreciation = $9,
			is_sales_tax = $10,
			hidden_from_pl = $11,
			last_updated_at = $12
		WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		category.CategoryID,
		category.Name,
		nullableString(category.FolderID),
		category.IsMonthly,
		category.DefaultAmount,
		nullableString(string(category.DefaultType)),
		category.CashflowSortOrder,
		category.IsCOGS,
		category.IsDepreciation,
		category.IsSalesTax,
		category.HiddenFromPL,
		category.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", category.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

type PgxFolderRepository struct {
	BaseRepository
}

// newPgxFolderRepository creates a new repository for category folders.
func newPgxFolderRepository(pool *pgxpool.Pool) portsrepo.FolderRepository {
	return &PgxFolderRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FolderRepository = (*PgxFolderRepository)(nil)

func (r *PgxFolderRepository) SaveFolder(ctx context.Context, folder domain.Folder) error {
	query := `
		INSERT INTO folders (folder_id, name, folder_type, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		folder.FolderID,
		folder.Name,
		folder.FolderType,
		folder.CreatedAt,
		folder.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save folder %s: %w", folder.FolderID, err)
	}
	return nil
}

func (r *PgxFolderRepository) FindFolderByID(ctx context.Context, folderID string) (*domain.Folder, error) {
	query := `
		SELECT folder_id, name, folder_type, created_at, last_updated_at
		FROM folders WHERE folder_id = $1;
	`
	var folder domain.Folder
	err := r.Pool.QueryRow(ctx, query, folderID).Scan(
		&folder.FolderID,
		&folder.Name,
		&folder.FolderType,
		&folder.CreatedAt,
		&folder.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find folder %s: %w", folderID, err)
	}
	return &folder, nil
}

func (r *PgxFolderRepository) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	query := `
		SELECT folder_id, name, folder_type, created_at, last_updated_at
		FROM folders ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query folders: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Folder, error) {
		var folder domain.Folder
		err := row.Scan(
			&folder.FolderID,
			&folder.Name,
			&folder.FolderType,
			&folder.CreatedAt,
			&folder.LastUpdatedAt,
		)
		return folder, err
	})
}

func (r *PgxFolderRepository) DeleteFolder(ctx context.Context, folderID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM folders WHERE folder_id = $1;`, folderID)
	if err != nil {
		return fmt.Errorf("failed to delete folder %s: %w", folderID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
