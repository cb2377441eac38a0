package pgsql

import (
	portsrepo "github.com/finbooks/finbooks_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TransactionRepo: newPgxTransactionRepository(dbPool),
		CategoryRepo:    newPgxCategoryRepository(dbPool),
		FolderRepo:      newPgxFolderRepository(dbPool),
		AssetRepo:       newPgxAssetRepository(dbPool),
		LoanRepo:        newPgxLoanRepository(dbPool),
		OverrideRepo:    newPgxOverrideRepository(dbPool),
		EquityRepo:      newPgxEquityRepository(dbPool),
	}
}
