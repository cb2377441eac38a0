package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
)

// exportService implements the ExportSvcFacade interface
type exportService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepository
	categoryRepo portsrepo.CategoryRepository
}

// NewExportService creates a new export service
func NewExportService(txnRepo portsrepo.TransactionRepository, categoryRepo portsrepo.CategoryRepository) portssvc.ExportSvcFacade {
	return &exportService{txnRepo: txnRepo, categoryRepo: categoryRepo}
}

var _ portssvc.ExportSvcFacade = (*exportService)(nil)

var csvHeader = []string{
	"entry_date", "category", "type", "amount", "pretax_amount",
	"status", "month_due", "month_paid", "date_processed",
	"payment_for_month", "notes",
}

func (s *exportService) TransactionsCSV(ctx context.Context) ([]byte, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for export: %w", err)
	}
	categories, err := s.categoryRepo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories for export: %w", err)
	}
	names := make(map[string]string, len(categories))
	for _, c := range categories {
		names[c.CategoryID] = c.Name
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, txn := range txns {
		if err := w.Write(csvRecord(txn, names)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Transactions exported", "count", len(txns))
	return buf.Bytes(), nil
}

func csvRecord(txn domain.Transaction, names map[string]string) []string {
	name := names[txn.CategoryID]
	if name == "" {
		name = txn.CategoryID
	}
	pretax := ""
	if txn.PretaxAmount != nil {
		pretax = txn.PretaxAmount.StringFixed(2)
	}
	processed := ""
	if txn.DateProcessed != nil {
		processed = txn.DateProcessed.Format(time.DateOnly)
	}
	return []string{
		txn.EntryDate.Format(time.DateOnly),
		name,
		string(txn.TransactionType),
		txn.Amount.StringFixed(2),
		pretax,
		string(txn.Status),
		optionalMonth(txn.MonthDue),
		optionalMonth(txn.MonthPaid),
		processed,
		optionalMonth(txn.PaymentForMonth),
		txn.Notes,
	}
}

func optionalMonth(m domain.Month) string {
	if m.IsZero() {
		return ""
	}
	return m.String()
}
