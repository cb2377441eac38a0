package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/google/uuid"
)

// categoryService implements the CategorySvcFacade interface
type categoryService struct {
	BaseService
	categoryRepo portsrepo.CategoryRepository
	folderRepo   portsrepo.FolderRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo portsrepo.CategoryRepository, folderRepo portsrepo.FolderRepository) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo, folderRepo: folderRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

func (s *categoryService) CreateCategory(ctx context.Context, req dto.CreateCategoryRequest) (*domain.Category, error) {
	if req.FolderID != "" {
		if _, err := s.folderRepo.FindFolderByID(ctx, req.FolderID); err != nil {
			return nil, fmt.Errorf("invalid folder: %w", err)
		}
	}

	now := time.Now()
	category := domain.Category{
		CategoryID:        uuid.NewString(),
		Name:              req.Name,
		FolderID:          req.FolderID,
		IsMonthly:         req.IsMonthly,
		DefaultAmount:     req.DefaultAmount,
		DefaultType:       req.DefaultType,
		CashflowSortOrder: req.CashflowSortOrder,
		IsCOGS:            req.IsCOGS,
		IsDepreciation:    req.IsDepreciation,
		IsSalesTax:        req.IsSalesTax,
		HiddenFromPL:      req.HiddenFromPL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		s.LogError(ctx, err, "Failed to save category",
			slog.String("category_id", category.CategoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category created successfully",
		slog.String("category_id", category.CategoryID),
		slog.String("name", category.Name))
	return &category, nil
}

func (s *categoryService) GetCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find category for update: %w", err)
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.FolderID != nil {
		if *req.FolderID != "" {
			if _, err := s.folderRepo.FindFolderByID(ctx, *req.FolderID); err != nil {
				return nil, fmt.Errorf("invalid folder: %w", err)
			}
		}
		category.FolderID = *req.FolderID
	}
	if req.IsMonthly != nil {
		category.IsMonthly = *req.IsMonthly
	}
	if req.DefaultAmount != nil {
		category.DefaultAmount = req.DefaultAmount
	}
	if req.CashflowSortOrder != nil {
		category.CashflowSortOrder = *req.CashflowSortOrder
	}
	if req.IsCOGS != nil {
		category.IsCOGS = *req.IsCOGS
	}
	if req.IsDepreciation != nil {
		category.IsDepreciation = *req.IsDepreciation
	}
	if req.IsSalesTax != nil {
		category.IsSalesTax = *req.IsSalesTax
	}
	if req.HiddenFromPL != nil {
		category.HiddenFromPL = *req.HiddenFromPL
	}
	category.LastUpdatedAt = time.Now()

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category",
			slog.String("category_id", categoryID))
		return nil, err
	}

	s.LogInfo(ctx, "Category updated successfully",
		slog.String("category_id", categoryID))
	return category, nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, categoryID string) error {
	if err := s.categoryRepo.DeleteCategory(ctx, categoryID); err != nil {
		s.LogError(ctx, err, "Failed to delete category",
			slog.String("category_id", categoryID))
		return err
	}
	s.LogInfo(ctx, "Category deleted successfully",
		slog.String("category_id", categoryID))
	return nil
}

// folderService implements the FolderSvcFacade interface
type folderService struct {
	BaseService
	folderRepo portsrepo.FolderRepository
}

// NewFolderService creates a new folder service
func NewFolderService(folderRepo portsrepo.FolderRepository) portssvc.FolderSvcFacade {
	return &folderService{folderRepo: folderRepo}
}

var _ portssvc.FolderSvcFacade = (*folderService)(nil)

func (s *folderService) CreateFolder(ctx context.Context, req dto.CreateFolderRequest) (*domain.Folder, error) {
	switch req.FolderType {
	case domain.FolderPayable, domain.FolderReceivable:
	default:
		return nil, fmt.Errorf("%w: unknown folder type %q", apperrors.ErrValidation, req.FolderType)
	}

	now := time.Now()
	folder := domain.Folder{
		FolderID:   uuid.NewString(),
		Name:       req.Name,
		FolderType: req.FolderType,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.folderRepo.SaveFolder(ctx, folder); err != nil {
		s.LogError(ctx, err, "Failed to save folder",
			slog.String("folder_id", folder.FolderID))
		return nil, err
	}

	s.LogInfo(ctx, "Folder created successfully",
		slog.String("folder_id", folder.FolderID))
	return &folder, nil
}

func (s *folderService) GetFolderByID(ctx context.Context, folderID string) (*domain.Folder, error) {
	folder, err := s.folderRepo.FindFolderByID(ctx, folderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get folder: %w", err)
	}
	return folder, nil
}

func (s *folderService) ListFolders(ctx context.Context) ([]domain.Folder, error) {
	folders, err := s.folderRepo.ListFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list folders: %w", err)
	}
	if folders == nil {
		return []domain.Folder{}, nil
	}
	return folders, nil
}

func (s *folderService) DeleteFolder(ctx context.Context, folderID string) error {
	if err := s.folderRepo.DeleteFolder(ctx, folderID); err != nil {
		s.LogError(ctx, err, "Failed to delete folder",
			slog.String("folder_id", folderID))
		return err
	}
	s.LogInfo(ctx, "Folder deleted successfully",
		slog.String("folder_id", folderID))
	return nil
}
