package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/core/engine"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/google/uuid"
)

// loanService implements the LoanSvcFacade interface
type loanService struct {
	BaseService
	loanRepo portsrepo.LoanRepository
}

// NewLoanService creates a new loan service
func NewLoanService(loanRepo portsrepo.LoanRepository) portssvc.LoanSvcFacade {
	return &loanService{loanRepo: loanRepo}
}

var _ portssvc.LoanSvcFacade = (*loanService)(nil)

func (s *loanService) CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error) {
	now := time.Now()
	loan := domain.Loan{
		LoanID:          uuid.NewString(),
		Name:            req.Name,
		Principal:       req.Principal,
		AnnualRate:      req.AnnualRate,
		TermMonths:      req.TermMonths,
		PaymentsPerYear: req.PaymentsPerYear,
		StartDate:       req.StartDate,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := loan.Validate(); err != nil {
		return nil, err
	}
	if loan.NumPayments() <= 0 {
		return nil, fmt.Errorf("%w: term and payment frequency produce no payments", apperrors.ErrInvalidLoanParameters)
	}

	if err := s.loanRepo.SaveLoan(ctx, loan); err != nil {
		s.LogError(ctx, err, "Failed to save loan",
			slog.String("loan_id", loan.LoanID))
		return nil, err
	}

	s.LogInfo(ctx, "Loan created successfully",
		slog.String("loan_id", loan.LoanID),
		slog.String("name", loan.Name))
	return &loan, nil
}

func (s *loanService) GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	return loan, nil
}

func (s *loanService) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	loans, err := s.loanRepo.ListLoans(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	if loans == nil {
		return []domain.Loan{}, nil
	}
	return loans, nil
}

func (s *loanService) UpdateLoan(ctx context.Context, loanID string, req dto.UpdateLoanRequest) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to find loan for update: %w", err)
	}

	if req.Name != nil {
		loan.Name = *req.Name
	}
	if req.Principal != nil {
		loan.Principal = *req.Principal
	}
	if req.AnnualRate != nil {
		loan.AnnualRate = *req.AnnualRate
	}
	if req.TermMonths != nil {
		loan.TermMonths = *req.TermMonths
	}
	if req.PaymentsPerYear != nil {
		loan.PaymentsPerYear = *req.PaymentsPerYear
	}
	if req.StartDate != nil {
		loan.StartDate = *req.StartDate
	}
	if req.Notes != nil {
		loan.Notes = *req.Notes
	}
	loan.LastUpdatedAt = time.Now()

	if err := loan.Validate(); err != nil {
		return nil, err
	}
	if loan.NumPayments() <= 0 {
		return nil, fmt.Errorf("%w: term and payment frequency produce no payments", apperrors.ErrInvalidLoanParameters)
	}

	if err := s.loanRepo.UpdateLoan(ctx, *loan); err != nil {
		s.LogError(ctx, err, "Failed to update loan",
			slog.String("loan_id", loanID))
		return nil, err
	}

	s.LogInfo(ctx, "Loan updated successfully",
		slog.String("loan_id", loanID))
	return loan, nil
}

func (s *loanService) DeleteLoan(ctx context.Context, loanID string) error {
	if err := s.loanRepo.DeleteLoan(ctx, loanID); err != nil {
		s.LogError(ctx, err, "Failed to delete loan",
			slog.String("loan_id", loanID))
		return err
	}
	s.LogInfo(ctx, "Loan deleted successfully",
		slog.String("loan_id", loanID))
	return nil
}

func (s *loanService) SkipPayment(ctx context.Context, loanID string, paymentNumber int) error {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return fmt.Errorf("failed to find loan: %w", err)
	}
	if paymentNumber < 1 || paymentNumber > loan.NumPayments() {
		return fmt.Errorf("%w: payment number %d out of range", apperrors.ErrValidation, paymentNumber)
	}

	now := time.Now()
	skipped := domain.SkippedPayment{
		LoanID:        loanID,
		PaymentNumber: paymentNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.loanRepo.SaveSkippedPayment(ctx, skipped); err != nil {
		s.LogError(ctx, err, "Failed to mark payment as skipped",
			slog.String("loan_id", loanID),
			slog.Int("payment_number", paymentNumber))
		return err
	}

	s.LogInfo(ctx, "Payment marked as skipped",
		slog.String("loan_id", loanID),
		slog.Int("payment_number", paymentNumber))
	return nil
}

func (s *loanService) UnskipPayment(ctx context.Context, loanID string, paymentNumber int) error {
	if err := s.loanRepo.DeleteSkippedPayment(ctx, loanID, paymentNumber); err != nil {
		s.LogError(ctx, err, "Failed to clear skipped payment",
			slog.String("loan_id", loanID),
			slog.Int("payment_number", paymentNumber))
		return err
	}
	s.LogInfo(ctx, "Skipped payment cleared",
		slog.String("loan_id", loanID),
		slog.Int("payment_number", paymentNumber))
	return nil
}

func (s *loanService) AmortizationSchedule(ctx context.Context, loanID string) (*domain.AmortizationSchedule, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("failed to find loan for schedule: %w", err)
	}

	all, err := s.loanRepo.ListSkippedPayments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list skipped payments: %w", err)
	}
	skipped := make(map[int]bool)
	for _, sp := range all {
		if sp.LoanID == loanID {
			skipped[sp.PaymentNumber] = true
		}
	}

	return engine.AmortizationSchedule(*loan, skipped)
}
