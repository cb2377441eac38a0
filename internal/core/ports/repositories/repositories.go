package repositories

// RepositoryProvider bundles every repository implementation so wiring
// code can pass them around as one value.
type RepositoryProvider struct {
	TransactionRepo TransactionRepository
	CategoryRepo    CategoryRepository
	FolderRepo      FolderRepository
	AssetRepo       AssetRepository
	LoanRepo        LoanRepository
	OverrideRepo    OverrideRepository
	EquityRepo      EquityRepository
}
