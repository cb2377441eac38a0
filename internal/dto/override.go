package dto

import (
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PutOverrideRequest sets the override value for one statement cell.
// CategoryID may be the reserved income-tax sentinel.
type PutOverrideRequest struct {
	CategoryID string          `json:"categoryID" binding:"required"`
	Month      string          `json:"month" binding:"required,yearmonth"`
	Amount     decimal.Decimal `json:"amount" binding:"required"`
}

// OverrideResponse defines the data returned for an override cell.
type OverrideResponse struct {
	CategoryID    string          `json:"categoryID"`
	Month         string          `json:"month"`
	Amount        decimal.Decimal `json:"amount"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToOverrideResponse converts a domain.Override to its DTO.
func ToOverrideResponse(o *domain.Override) OverrideResponse {
	return OverrideResponse{
		CategoryID:    o.CategoryID,
		Month:         o.Month.String(),
		Amount:        o.Amount,
		LastUpdatedAt: o.LastUpdatedAt,
	}
}

// ToOverrideResponses converts a slice of overrides.
func ToOverrideResponses(overrides []domain.Override) []OverrideResponse {
	out := make([]OverrideResponse, 0, len(overrides))
	for i := range overrides {
		out = append(out, ToOverrideResponse(&overrides[i]))
	}
	return out
}

// UpdateEquityConfigRequest replaces the equity configuration.
type UpdateEquityConfigRequest struct {
	CommonStockPar    decimal.Decimal `json:"commonStockPar"`
	CommonStockShares int64           `json:"commonStockShares" binding:"gte=0"`
	APIC              decimal.Decimal `json:"apic"`
	SeedExpectedDate  *time.Time      `json:"seedExpectedDate"`
	SeedReceivedDate  *time.Time      `json:"seedReceivedDate"`
	APICExpectedDate  *time.Time      `json:"apicExpectedDate"`
	APICReceivedDate  *time.Time      `json:"apicReceivedDate"`
}

// EquityConfigResponse defines the data returned for the equity configuration.
type EquityConfigResponse struct {
	CommonStockPar    decimal.Decimal `json:"commonStockPar"`
	CommonStockShares int64           `json:"commonStockShares"`
	APIC              decimal.Decimal `json:"apic"`
	CommonStock       decimal.Decimal `json:"commonStock"`
	SeedExpectedDate  *time.Time      `json:"seedExpectedDate,omitempty"`
	SeedReceivedDate  *time.Time      `json:"seedReceivedDate,omitempty"`
	APICExpectedDate  *time.Time      `json:"apicExpectedDate,omitempty"`
	APICReceivedDate  *time.Time      `json:"apicReceivedDate,omitempty"`
}

// ToEquityConfigResponse converts a domain.EquityConfig to its DTO.
func ToEquityConfigResponse(cfg *domain.EquityConfig) EquityConfigResponse {
	return EquityConfigResponse{
		CommonStockPar:    cfg.CommonStockPar,
		CommonStockShares: cfg.CommonStockShares,
		APIC:              cfg.APIC,
		CommonStock:       cfg.CommonStock(),
		SeedExpectedDate:  cfg.SeedExpectedDate,
		SeedReceivedDate:  cfg.SeedReceivedDate,
		APICExpectedDate:  cfg.APICExpectedDate,
		APICReceivedDate:  cfg.APICReceivedDate,
	}
}
