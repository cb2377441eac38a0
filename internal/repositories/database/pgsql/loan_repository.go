package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLoanRepository struct {
	BaseRepository
}

// newPgxLoanRepository creates a new repository for loans and their
// skipped-payment marks.
func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepository {
	return &PgxLoanRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LoanRepository = (*PgxLoanRepository)(nil)

const loanColumns = `
	loan_id, name, principal, annual_rate, term_months, payments_per_year,
	start_date, notes, created_at, last_updated_at
`

func scanLoan(row pgx.Row) (domain.Loan, error) {
	var loan domain.Loan
	err := row.Scan(
		&loan.LoanID,
		&loan.Name,
		&loan.Principal,
		&loan.AnnualRate,
		&loan.TermMonths,
		&loan.PaymentsPerYear,
		&loan.StartDate,
		&loan.Notes,
		&loan.CreatedAt,
		&loan.LastUpdatedAt,
	)
	return loan, err
}

func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	query := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		loan.LoanID,
		loan.Name,
		loan.Principal,
		loan.AnnualRate,
		loan.TermMonths,
		loan.PaymentsPerYear,
		loan.StartDate,
		loan.Notes,
		loan.CreatedAt,
		loan.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save loan %s: %w", loan.LoanID, err)
	}
	return nil
}

func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE loan_id = $1;`

	loan, err := scanLoan(r.Pool.QueryRow(ctx, query, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}
	return &loan, nil
}

func (r *PgxLoanRepository) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans ORDER BY start_date, loan_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Loan, error) {
		return scanLoan(row)
	})
}

func (r *PgxLoanRepository) UpdateLoan(ctx context.Context, loan domain.Loan) error {
	query := `
		UPDATE loans SET
			name = $2,
			principal = $3,
			annual_rate = $4,
			term_months = $5,
			payments_per_year = $6,
			start_date = $7,
			notes = $8,
			last_updated_at = $9
		WHERE loan_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		loan.LoanID,
		loan.Name,
		loan.Principal,
		loan.AnnualRate,
		loan.TermMonths,
		loan.PaymentsPerYear,
		loan.StartDate,
		loan.Notes,
		loan.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update loan %s: %w", loan.LoanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLoanRepository) DeleteLoan(ctx context.Context, loanID string) error {
	// Skipped-payment marks cascade via the foreign key.
	tag, err := r.Pool.Exec(ctx, `DELETE FROM loans WHERE loan_id = $1;`, loanID)
	if err != nil {
		return fmt.Errorf("failed to delete loan %s: %w", loanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLoanRepository) SaveSkippedPayment(ctx context.Context, skipped domain.SkippedPayment) error {
	query := `
		INSERT INTO skipped_payments (loan_id, payment_number, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (loan_id, payment_number) DO NOTHING;
	`
	_, err := r.Pool.Exec(ctx, query,
		skipped.LoanID,
		skipped.PaymentNumber,
		skipped.CreatedAt,
		skipped.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to save skipped payment %s/%d: %w", skipped.LoanID, skipped.PaymentNumber, err)
	}
	return nil
}

func (r *PgxLoanRepository) DeleteSkippedPayment(ctx context.Context, loanID string, paymentNumber int) error {
	tag, err := r.Pool.Exec(ctx,
		`DELETE FROM skipped_payments WHERE loan_id = $1 AND payment_number = $2;`,
		loanID, paymentNumber,
	)
	if err != nil {
		return fmt.Errorf("failed to delete skipped payment %s/%d: %w", loanID, paymentNumber, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLoanRepository) ListSkippedPayments(ctx context.Context) ([]domain.SkippedPayment, error) {
	query := `
		SELECT loan_id, payment_number, created_at, last_updated_at
		FROM skipped_payments ORDER BY loan_id, payment_number;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query skipped payments: %w", err)
	}
	defer rows.Close()

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SkippedPayment, error) {
		var sp domain.SkippedPayment
		err := row.Scan(&sp.LoanID, &sp.PaymentNumber, &sp.CreatedAt, &sp.LastUpdatedAt)
		return sp, err
	})
}
