package domain

// Snapshot is one consistent, in-memory copy of every record a statement
// computation reads. The engine is a pure function of a snapshot: it
// never mutates one, and callers loading from a shared store must
// copy-on-read before handing it over.
type Snapshot struct {
	Transactions    []Transaction
	Categories      []Category
	Folders         []Folder
	FixedAssets     []FixedAsset
	Loans           []Loan
	SkippedPayments []SkippedPayment
	Overrides       OverrideSet
	Equity          EquityConfig

	// CurrentMonth separates historical months from projected ones.
	CurrentMonth Month
	// TaxMode selects the income-tax treatment on the P&L.
	TaxMode TaxMode
}

// SkippedFor collects the skipped payment numbers for one loan.
func (s Snapshot) SkippedFor(loanID string) map[int]bool {
	skipped := make(map[int]bool)
	for _, sp := range s.SkippedPayments {
		if sp.LoanID == loanID {
			skipped[sp.PaymentNumber] = true
		}
	}
	return skipped
}

// CategoryByID finds a category in the snapshot, or nil.
func (s Snapshot) CategoryByID(id string) *Category {
	for i := range s.Categories {
		if s.Categories[i].CategoryID == id {
			return &s.Categories[i]
		}
	}
	return nil
}
