package services

import (
	"github.com/finbooks/finbooks_backend/internal/core/domain"
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	portssvc "github.com/finbooks/finbooks_backend/internal/core/ports/services"
	"github.com/finbooks/finbooks_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CategoryRepo)
	container.Category = NewCategoryService(repos.CategoryRepo, repos.FolderRepo)
	container.Folder = NewFolderService(repos.FolderRepo)
	container.Asset = NewAssetService(repos.AssetRepo)
	container.Loan = NewLoanService(repos.LoanRepo)
	container.Override = NewOverrideService(repos.OverrideRepo, repos.CategoryRepo)
	container.Equity = NewEquityService(repos.EquityRepo)
	container.Statement = NewStatementService(repos, domain.TaxMode(cfg.TaxMode))
	container.Export = NewExportService(repos.TransactionRepo, repos.CategoryRepo)
	container.Auth = NewAuthService(cfg)

	return container
}
