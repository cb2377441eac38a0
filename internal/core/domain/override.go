package domain

import "github.com/shopspring/decimal"

// OverrideKey identifies one overridable statement cell.
type OverrideKey struct {
	CategoryID string `json:"categoryID"`
	Month      Month  `json:"month"`
}

// Override is a user-entered value that replaces a computed cell.
// CategoryID may be TaxOverrideCategoryID for the income-tax row.
type Override struct {
	CategoryID string          `json:"categoryID"`
	Month      Month           `json:"month"`
	Amount     decimal.Decimal `json:"amount"`
	AuditFields
}

// OverrideSet is the override map a statement computation receives.
// It is always passed explicitly into the engine, never held as shared
// global state.
type OverrideSet map[OverrideKey]decimal.Decimal

// Lookup returns the override for (categoryID, month) if one is set.
func (o OverrideSet) Lookup(categoryID string, month Month) (decimal.Decimal, bool) {
	v, ok := o[OverrideKey{CategoryID: categoryID, Month: month}]
	return v, ok
}
