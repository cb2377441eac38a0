package domain

import (
	"fmt"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// DepreciationMethod selects how a fixed asset is written down.
type DepreciationMethod string

const (
	StraightLine    DepreciationMethod = "STRAIGHT_LINE"
	DoubleDeclining DepreciationMethod = "DOUBLE_DECLINING"
	NoDepreciation  DepreciationMethod = "NONE"
)

// FixedAsset is a purchased asset depreciated over its useful life.
type FixedAsset struct {
	AssetID            string             `json:"assetID"`
	Name               string             `json:"name"`
	PurchaseCost       decimal.Decimal    `json:"purchaseCost"`
	SalvageValue       decimal.Decimal    `json:"salvageValue"`
	UsefulLifeMonths   int                `json:"usefulLifeMonths"`
	DepreciationMethod DepreciationMethod `json:"depreciationMethod"`
	PurchaseDate       time.Time          `json:"purchaseDate"`
	Notes              string             `json:"notes"`
	AuditFields
}

// Validate enforces the construction-time field constraints.
func (a FixedAsset) Validate() error {
	switch a.DepreciationMethod {
	case StraightLine, DoubleDeclining, NoDepreciation:
	default:
		return fmt.Errorf("%w: unknown depreciation method %q", apperrors.ErrValidation, a.DepreciationMethod)
	}
	if a.PurchaseCost.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: purchase cost must be positive", apperrors.ErrValidation)
	}
	if a.SalvageValue.IsNegative() {
		return fmt.Errorf("%w: salvage value cannot be negative", apperrors.ErrValidation)
	}
	if a.SalvageValue.GreaterThan(a.PurchaseCost) {
		return fmt.Errorf("%w: salvage value cannot exceed purchase cost", apperrors.ErrValidation)
	}
	if a.DepreciationMethod != NoDepreciation && a.UsefulLifeMonths <= 0 {
		return fmt.Errorf("%w: useful life must be positive", apperrors.ErrValidation)
	}
	return nil
}

// DepreciableBase is the total amount the asset depreciates over its life.
func (a FixedAsset) DepreciableBase() decimal.Decimal {
	return a.PurchaseCost.Sub(a.SalvageValue)
}
