package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/finbooks/finbooks_backend/internal/apperrors"
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	"github.com/finbooks/finbooks_backend/internal/core/engine"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
)

// statementService implements the StatementSvcFacade interface. It
// assembles one snapshot per request and hands it to the engine; the
// engine itself never touches a repository.
type statementService struct {
	BaseService
	repos          portsrepo.RepositoryProvider
	defaultTaxMode domain.TaxMode
	now            func() time.Time
}

// NewStatementService creates a new statement service.
func NewStatementService(repos portsrepo.RepositoryProvider, defaultTaxMode domain.TaxMode) portssvc.StatementSvcFacade {
	return &statementService{
		repos:          repos,
		defaultTaxMode: defaultTaxMode,
		now:            time.Now,
	}
}

var _ portssvc.StatementSvcFacade = (*statementService)(nil)

// loadSnapshot reads every record a statement computation needs into one
// consistent in-memory copy.
func (s *statementService) loadSnapshot(ctx context.Context, opts portssvc.StatementOptions) (domain.Snapshot, error) {
	var snap domain.Snapshot
	var err error

	if snap.Transactions, err = s.repos.TransactionRepo.ListTransactions(ctx); err != nil {
		return snap, fmt.Errorf("failed to load transactions: %w", err)
	}
	if snap.Categories, err = s.repos.CategoryRepo.ListCategories(ctx); err != nil {
		return snap, fmt.Errorf("failed to load categories: %w", err)
	}
	if snap.Folders, err = s.repos.FolderRepo.ListFolders(ctx); err != nil {
		return snap, fmt.Errorf("failed to load folders: %w", err)
	}
	if snap.FixedAssets, err = s.repos.AssetRepo.ListAssets(ctx); err != nil {
		return snap, fmt.Errorf("failed to load assets: %w", err)
	}
	if snap.Loans, err = s.repos.LoanRepo.ListLoans(ctx); err != nil {
		return snap, fmt.Errorf("failed to load loans: %w", err)
	}
	if snap.SkippedPayments, err = s.repos.LoanRepo.ListSkippedPayments(ctx); err != nil {
		return snap, fmt.Errorf("failed to load skipped payments: %w", err)
	}

	overrides, err := s.repos.OverrideRepo.ListOverrides(ctx)
	if err != nil {
		return snap, fmt.Errorf("failed to load overrides: %w", err)
	}
	snap.Overrides = make(domain.OverrideSet, len(overrides))
	for _, o := range overrides {
		snap.Overrides[domain.OverrideKey{CategoryID: o.CategoryID, Month: o.Month}] = o.Amount
	}

	equity, err := s.repos.EquityRepo.GetEquityConfig(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return snap, fmt.Errorf("failed to load equity config: %w", err)
	}
	if equity != nil {
		snap.Equity = *equity
	}

	snap.CurrentMonth = opts.CurrentMonth
	if snap.CurrentMonth.IsZero() {
		snap.CurrentMonth = domain.MonthOf(s.now())
	}
	snap.TaxMode = opts.TaxMode
	if snap.TaxMode == "" {
		snap.TaxMode = s.defaultTaxMode
	}
	return snap, nil
}

func (s *statementService) ProfitAndLoss(ctx context.Context, from, to domain.Month, opts portssvc.StatementOptions) (*domain.PLStatement, error) {
	snap, err := s.loadSnapshot(ctx, opts)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Building profit and loss statement",
		"from", from.String(), "to", to.String())
	return engine.BuildProfitAndLoss(snap, from, to), nil
}

func (s *statementService) CashFlow(ctx context.Context, from, to domain.Month, opts portssvc.StatementOptions) (*domain.CashFlowStatement, error) {
	snap, err := s.loadSnapshot(ctx, opts)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Building cash flow statement",
		"from", from.String(), "to", to.String())
	return engine.BuildCashFlow(snap, from, to), nil
}

func (s *statementService) BalanceSheet(ctx context.Context, asOf domain.Month, opts portssvc.StatementOptions) (*domain.BalanceSheet, error) {
	snap, err := s.loadSnapshot(ctx, opts)
	if err != nil {
		return nil, err
	}
	s.LogDebug(ctx, "Building balance sheet", "as_of", asOf.String())
	return engine.BuildBalanceSheet(snap, asOf), nil
}
