package domain

import "github.com/shopspring/decimal"

// FolderType says which side of the ledger a folder groups.
type FolderType string

const (
	FolderPayable    FolderType = "PAYABLE"
	FolderReceivable FolderType = "RECEIVABLE"
)

// Folder is a grouping label for categories. It carries no computation
// semantics beyond display ordering.
type Folder struct {
	FolderID   string     `json:"folderID"`
	Name       string     `json:"name"`
	FolderType FolderType `json:"folderType"`
	AuditFields
}

// Category classifies transactions. Categories are created and edited
// externally; the engine only reads them.
type Category struct {
	CategoryID        string           `json:"categoryID"`
	Name              string           `json:"name"`
	FolderID          string           `json:"folderID,omitempty"` // optional grouping
	IsMonthly         bool             `json:"isMonthly"`
	DefaultAmount     *decimal.Decimal `json:"defaultAmount,omitempty"` // form defaults only
	DefaultType       TransactionType  `json:"defaultType,omitempty"`
	CashflowSortOrder int              `json:"cashflowSortOrder"`
	IsCOGS            bool             `json:"isCOGS"`
	IsDepreciation    bool             `json:"isDepreciation"`
	IsSalesTax        bool             `json:"isSalesTax"`
	// HiddenFromPL suppresses the category from the Profit & Loss
	// statement when true. The upstream data model named this flag
	// ambiguously; true means hidden here, matching observed behavior.
	HiddenFromPL bool `json:"hiddenFromPL"`
	AuditFields
}

// TaxOverrideCategoryID is the reserved sentinel category used to key the
// income-tax override row. It never refers to a real category.
const TaxOverrideCategoryID = "__income_tax__"
