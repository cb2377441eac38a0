package services

import (
	"context"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/dto"
)

// CategoryReaderSvc defines read operations for categories.
type CategoryReaderSvc interface {
	// GetCategoryByID retrieves a specific category by its unique identifier.
	GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error)

	// ListCategories retrieves all categories.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// CategoryWriterSvc defines write operations for categories.
type CategoryWriterSvc interface {
	// CreateCategory persists a new category.
	CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error)

	// UpdateCategory updates an existing category's details.
	UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error)

	// DeleteCategory removes a category.
	DeleteCategory(ctx context.Context, categoryID string) error
}

// CategorySvcFacade combines all category-related service interfaces.
type CategorySvcFacade interface {
	CategoryReaderSvc
	CategoryWriterSvc
}

// FolderSvcFacade defines operations for category folders.
type FolderSvcFacade interface {
	// CreateFolder persists a new folder.
	CreateFolder(ctx context.Context, req dto.CreateFolderRequest) (*domain.Folder, error)

	// GetFolderByID retrieves a specific folder by its unique identifier.
	GetFolderByID(ctx context.Context, folderID string) (*domain.Folder, error)

	// ListFolders retrieves all folders.
	ListFolders(ctx context.Context) ([]domain.Folder, error)

	// DeleteFolder removes a folder.
	DeleteFolder(ctx context.Context, folderID string) error
}
