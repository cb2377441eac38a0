package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for ledger transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

const transactionColumns = `
	transaction_id, entry_date, category_id, amount, pretax_amount,
	transaction_type, status, month_due, month_paid, date_processed,
	payment_for_month, notes, created_at, last_updated_at
`

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var txn domain.Transaction
	var monthDue, monthPaid, paymentForMonth *string

	err := row.Scan(
		&txn.TransactionID,
		&txn.EntryDate,
		&txn.CategoryID,
		&txn.Amount,
		&txn.PretaxAmount,
		&txn.TransactionType,
		&txn.Status,
		&monthDue,
		&monthPaid,
		&txn.DateProcessed,
		&paymentForMonth,
		&txn.Notes,
		&txn.CreatedAt,
		&txn.LastUpdatedAt,
	)
	if err != nil {
		return txn, err
	}

	if txn.MonthDue, err = scanMonth(monthDue); err != nil {
		return txn, err
	}
	if txn.MonthPaid, err = scanMonth(monthPaid); err != nil {
		return txn, err
	}
	if txn.PaymentForMonth, err = scanMonth(paymentForMonth); err != nil {
		return txn, err
	}
	return txn, nil
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.EntryDate,
		txn.CategoryID,
		txn.Amount,
		txn.PretaxAmount,
		txn.TransactionType,
		txn.Status,
		monthParam(txn.MonthDue),
		monthParam(txn.MonthPaid),
		txn.DateProcessed,
		monthParam(txn.PaymentForMonth),
		txn.Notes,
		txn.CreatedAt,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction %s: %w", txn.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	txn, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}
	return &txn, nil
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY entry_date, transaction_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Transaction, error) {
		return scanTransaction(row)
	})
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
		UPDATE transactions SET
			entry_date = $2,
			category_id = $3,
			amount = $4,
			pretax_amount = $5,
			transaction_type = $6,
			status = $7,
			month_due = $8,
			month_paid = $9,
			date_processed = $10,
			payment_for_month = $11,
			notes = $12,
			last_updated_at = $13
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		txn.TransactionID,
		txn.EntryDate,
		txn.CategoryID,
		txn.Amount,
		txn.PretaxAmount,
		txn.TransactionType,
		txn.Status,
		monthParam(txn.MonthDue),
		monthParam(txn.MonthPaid),
		txn.DateProcessed,
		monthParam(txn.PaymentForMonth),
		txn.Notes,
		txn.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
