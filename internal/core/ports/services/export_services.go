package services

import "context"

// ExportSvcFacade defines operations for exporting ledger data.
type ExportSvcFacade interface {
	// TransactionsCSV renders every transaction as an RFC 4180 CSV document.
	TransactionsCSV(ctx context.Context) ([]byte, error)
}
