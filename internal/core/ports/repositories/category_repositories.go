package repositories

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, categoryID string) error
}

// FolderRepository defines persistence operations for category folders.
type FolderRepository interface {
	SaveFolder(ctx context.Context, folder domain.Folder) error
	FindFolderByID(ctx context.Context, folderID string) (*domain.Folder, error)
	ListFolders(ctx context.Context) ([]domain.Folder, error)
	DeleteFolder(ctx context.Context, folderID string) error
}
