package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAssetRequest defines the data needed to record a fixed asset.
type CreateAssetRequest struct {
	Name               string                    `json:"name" binding:"required"`
	PurchaseCost       decimal.Decimal           `json:"purchaseCost" binding:"required"`
	SalvageValue       decimal.Decimal           `json:"salvageValue"`
	UsefulLifeMonths   int                       `json:"usefulLifeMonths"`
	DepreciationMethod domain.DepreciationMethod `json:"depreciationMethod" binding:"required,oneof=STRAIGHT_LINE DOUBLE_DECLINING NONE"`
	PurchaseDate       time.Time                 `json:"purchaseDate" binding:"required"`
	Notes              string                    `json:"notes"`
}

// UpdateAssetRequest defines the fields allowed when editing an asset.
type UpdateAssetRequest struct {
	Name               *string                    `json:"name"`
	PurchaseCost       *decimal.Decimal           `json:"purchaseCost"`
	SalvageValue       *decimal.Decimal           `json:"salvageValue"`
	UsefulLifeMonths   *int                       `json:"usefulLifeMonths"`
	DepreciationMethod *domain.DepreciationMethod `json:"depreciationMethod" binding:"omitempty,oneof=STRAIGHT_LINE DOUBLE_DECLINING NONE"`
	PurchaseDate       *time.Time                 `json:"purchaseDate"`
	Notes              *string                    `json:"notes"`
}

// AssetResponse defines the data returned for a fixed asset.
type AssetResponse struct {
	AssetID            string                    `json:"assetID"`
	Name               string                    `json:"name"`
	PurchaseCost       decimal.Decimal           `json:"purchaseCost"`
	SalvageValue       decimal.Decimal           `json:"salvageValue"`
	UsefulLifeMonths   int                       `json:"usefulLifeMonths"`
	DepreciationMethod domain.DepreciationMethod `json:"depreciationMethod"`
	PurchaseDate       time.Time                 `json:"purchaseDate"`
	Notes              string                    `json:"notes,omitempty"`
	CreatedAt          time.Time                 `json:"createdAt"`
	LastUpdatedAt      time.Time                 `json:"lastUpdatedAt"`
}

// ToAssetResponse converts a domain.FixedAsset to its DTO.
func ToAssetResponse(asset *domain.FixedAsset) AssetResponse {
	return AssetResponse{
		AssetID:            asset.AssetID,
		Name:               asset.Name,
		PurchaseCost:       asset.PurchaseCost,
		SalvageValue:       asset.SalvageValue,
		UsefulLifeMonths:   asset.UsefulLifeMonths,
		DepreciationMethod: asset.DepreciationMethod,
		PurchaseDate:       asset.PurchaseDate,
		Notes:              asset.Notes,
		CreatedAt:          asset.CreatedAt,
		LastUpdatedAt:      asset.LastUpdatedAt,
	}
}

// ToAssetResponses converts a slice of assets.
func ToAssetResponses(assets []domain.FixedAsset) []AssetResponse {
	out := make([]AssetResponse, 0, len(assets))
	for i := range assets {
		out = append(out, ToAssetResponse(&assets[i]))
	}
	return out
}

// ScheduleEntryResponse is one month of a depreciation schedule.
type ScheduleEntryResponse struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// ToScheduleResponse converts a depreciation schedule.
func ToScheduleResponse(entries []domain.ScheduleEntry) []ScheduleEntryResponse {
	out := make([]ScheduleEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ScheduleEntryResponse{Month: e.Month.String(), Amount: e.Amount})
	}
	return out
}
