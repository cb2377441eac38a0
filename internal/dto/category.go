package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to create a category.
type CreateCategoryRequest struct {
	Name              string                 `json:"name" binding:"required"`
	FolderID          string                 `json:"folderID"`
	IsMonthly         bool                   `json:"isMonthly"`
	DefaultAmount     *decimal.Decimal       `json:"defaultAmount"`
	DefaultType       domain.TransactionType `json:"defaultType" binding:"omitempty,oneof=RECEIVABLE PAYABLE"`
	CashflowSortOrder int                    `json:"cashflowSortOrder"`
	IsCOGS            bool                   `json:"isCOGS"`
	IsDepreciation    bool                   `json:"isDepreciation"`
	IsSalesTax        bool                   `json:"isSalesTax"`
	HiddenFromPL      bool                   `json:"hiddenFromPL"`
}

// UpdateCategoryRequest defines the fields allowed when editing a category.
type UpdateCategoryRequest struct {
	Name              *string          `json:"name"`
	FolderID          *string          `json:"folderID"`
	IsMonthly         *bool            `json:"isMonthly"`
	DefaultAmount     *decimal.Decimal `json:"defaultAmount"`
	CashflowSortOrder *int             `json:"cashflowSortOrder"`
	IsCOGS            *bool            `json:"isCOGS"`
	IsDepreciation    *bool            `json:"isDepreciation"`
	IsSalesTax        *bool            `json:"isSalesTax"`
	HiddenFromPL      *bool            `json:"hiddenFromPL"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID        string                 `json:"categoryID"`
	Name              string                 `json:"name"`
	FolderID          string                 `json:"folderID,omitempty"`
	IsMonthly         bool                   `json:"isMonthly"`
	DefaultAmount     *decimal.Decimal       `json:"defaultAmount,omitempty"`
	DefaultType       domain.TransactionType `json:"defaultType,omitempty"`
	CashflowSortOrder int                    `json:"cashflowSortOrder"`
	IsCOGS            bool                   `json:"isCOGS"`
	IsDepreciation    bool                   `json:"isDepreciation"`
	IsSalesTax        bool                   `json:"isSalesTax"`
	HiddenFromPL      bool                   `json:"hiddenFromPL"`
	CreatedAt         time.Time              `json:"createdAt"`
	LastUpdatedAt     time.Time              `json:"lastUpdatedAt"`
}

// ToCategoryResponse converts a domain.Category to its DTO.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:        cat.CategoryID,
		Name:              cat.Name,
		FolderID:          cat.FolderID,
		IsMonthly:         cat.IsMonthly,
		DefaultAmount:     cat.DefaultAmount,
		DefaultType:       cat.DefaultType,
		CashflowSortOrder: cat.CashflowSortOrder,
		IsCOGS:            cat.IsCOGS,
		IsDepreciation:    cat.IsDepreciation,
		IsSalesTax:        cat.IsSalesTax,
		HiddenFromPL:      cat.HiddenFromPL,
		CreatedAt:         cat.CreatedAt,
		LastUpdatedAt:     cat.LastUpdatedAt,
	}
}

// ToCategoryResponses converts a slice of categories.
func ToCategoryResponses(cats []domain.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for i := range cats {
		out = append(out, ToCategoryResponse(&cats[i]))
	}
	return out
}

// CreateFolderRequest defines the data needed to create a folder.
type CreateFolderRequest struct {
	Name       string            `json:"name" binding:"required"`
	FolderType domain.FolderType `json:"folderType" binding:"required,oneof=PAYABLE RECEIVABLE"`
}

// FolderResponse defines the data returned for a folder.
type FolderResponse struct {
	FolderID   string            `json:"folderID"`
	Name       string            `json:"name"`
	FolderType domain.FolderType `json:"folderType"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ToFolderResponse converts a domain.Folder to its DTO.
func ToFolderResponse(folder *domain.Folder) FolderResponse {
	return FolderResponse{
		FolderID:   folder.FolderID,
		Name:       folder.Name,
		FolderType: folder.FolderType,
		CreatedAt:  folder.CreatedAt,
	}
}
