package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/dto"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface
type transactionService struct {
	BaseService
	txnRepo      portsrepo.TransactionRepository
	categoryRepo portsrepo.CategoryRepository
}

// NewTransactionService creates a new transaction service
func NewTransactionService(txnRepo portsrepo.TransactionRepository, categoryRepo portsrepo.CategoryRepository) portssvc.TransactionSvcFacade {
	return &transactionService{txnRepo: txnRepo, categoryRepo: categoryRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	if _, err := s.categoryRepo.FindCategoryByID(ctx, req.CategoryID); err != nil {
		s.LogError(ctx, err, "Category lookup failed for new transaction",
			slog.String("category_id", req.CategoryID))
		return nil, fmt.Errorf("invalid category: %w", err)
	}

	monthDue, err := dto.ParseOptionalMonth(req.MonthDue)
	if err != nil {
		return nil, err
	}
	monthPaid, err := dto.ParseOptionalMonth(req.MonthPaid)
	if err != nil {
		return nil, err
	}
	paymentForMonth, err := dto.ParseOptionalMonth(req.PaymentForMonth)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		EntryDate:       req.EntryDate,
		CategoryID:      req.CategoryID,
		Amount:          req.Amount,
		PretaxAmount:    req.PretaxAmount,
		TransactionType: req.TransactionType,
		Status:          req.Status,
		MonthDue:        monthDue,
		MonthPaid:       monthPaid,
		DateProcessed:   req.DateProcessed,
		PaymentForMonth: paymentForMonth,
		Notes:           req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction",
			slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created successfully",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("category_id", txn.CategoryID))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if txns == nil {
		return []domain.Transaction{}, nil
	}
	return txns, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction for update: %w", err)
	}

	if req.EntryDate != nil {
		txn.EntryDate = *req.EntryDate
	}
	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindCategoryByID(ctx, *req.CategoryID); err != nil {
			return nil, fmt.Errorf("invalid category: %w", err)
		}
		txn.CategoryID = *req.CategoryID
	}
	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.PretaxAmount != nil {
		txn.PretaxAmount = req.PretaxAmount
	}
	if req.TransactionType != nil {
		txn.TransactionType = *req.TransactionType
	}
	if req.Status != nil {
		txn.Status = *req.Status
	}
	if req.MonthDue != nil {
		month, err := dto.ParseOptionalMonth(*req.MonthDue)
		if err != nil {
			return nil, err
		}
		txn.MonthDue = month
	}
	if req.MonthPaid != nil {
		month, err := dto.ParseOptionalMonth(*req.MonthPaid)
		if err != nil {
			return nil, err
		}
		txn.MonthPaid = month
	}
	if req.DateProcessed != nil {
		txn.DateProcessed = req.DateProcessed
	}
	if req.PaymentForMonth != nil {
		month, err := dto.ParseOptionalMonth(*req.PaymentForMonth)
		if err != nil {
			return nil, err
		}
		txn.PaymentForMonth = month
	}
	if req.Notes != nil {
		txn.Notes = *req.Notes
	}
	txn.LastUpdatedAt = time.Now()

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated successfully",
		slog.String("transaction_id", transactionID))
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("transaction_id", transactionID))
		return err
	}
	s.LogInfo(ctx, "Transaction deleted successfully",
		slog.String("transaction_id", transactionID))
	return nil
}
