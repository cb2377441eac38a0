package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// TaxMode selects how income tax is derived on the Profit & Loss statement.
type TaxMode string

const (
	// TaxModeCorporate applies the flat corporate rate to positive pre-tax income.
	TaxModeCorporate TaxMode = "corporate"
	// TaxModePassthrough reports no entity-level income tax.
	TaxModePassthrough TaxMode = "passthrough"
)

// ValidTaxMode reports whether s is a recognized tax mode.
func ValidTaxMode(s string) bool {
	return TaxMode(s) == TaxModeCorporate || TaxMode(s) == TaxModePassthrough
}
