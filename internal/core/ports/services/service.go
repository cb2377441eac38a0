package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Transaction TransactionSvcFacade
	Category    CategorySvcFacade
	Folder      FolderSvcFacade
	Asset       AssetSvcFacade
	Loan        LoanSvcFacade
	Override    OverrideSvcFacade
	Equity      EquitySvcFacade
	Statement   StatementSvcFacade
	Export      ExportSvcFacade
	Auth        AuthSvcFacade
}
