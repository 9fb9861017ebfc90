package services

import (
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo, repos.TransactionRepo),
		Ledger:    NewLedgerService(repos.AccountRepo, repos.TransactionRepo),
		Reporting: NewReportingService(repos.AccountRepo, repos.TransactionRepo),
	}
}
