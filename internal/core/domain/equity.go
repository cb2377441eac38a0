package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EquityConfig holds the contributed-capital figures used on the balance
// sheet. The expected/received dates drive status display only.
type EquityConfig struct {
	CommonStockPar    decimal.Decimal `json:"commonStockPar"`
	CommonStockShares int64           `json:"commonStockShares"`
	APIC              decimal.Decimal `json:"apic"`
	SeedExpectedDate  *time.Time      `json:"seedExpectedDate,omitempty"`
	SeedReceivedDate  *time.Time      `json:"seedReceivedDate,omitempty"`
	APICExpectedDate  *time.Time      `json:"apicExpectedDate,omitempty"`
	APICReceivedDate  *time.Time      `json:"apicReceivedDate,omitempty"`
	AuditFields
}

// CommonStock is the par value of all issued common stock.
func (e EquityConfig) CommonStock() decimal.Decimal {
	return e.CommonStockPar.Mul(decimal.NewFromInt(e.CommonStockShares))
}
