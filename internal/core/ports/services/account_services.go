package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves the chart of accounts.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error)
}

// AccountCalculatorSvc defines calculation operations for account data
type AccountCalculatorSvc interface {
	// GetAccountBalance derives the balance of an account from every transaction dated on or before asOf.
	GetAccountBalance(ctx context.Context, accountID string, asOf time.Time) (*domain.Account, *domain.AccountBalance, error)

	// GetTAccount replays an account's transactions in date order with a running balance.
	GetTAccount(ctx context.Context, accountID string) (*domain.TAccount, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
