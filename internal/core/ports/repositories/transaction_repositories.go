package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// TransactionFilter narrows a ledger read by transaction date. Both bounds are inclusive
// and a nil bound is open.
type TransactionFilter struct {
	From *time.Time
	AsOf *time.Time
}

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a single ledger transaction.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves every transaction matching the filter, ordered by date then creation time.
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]domain.Transaction, error)

	// ListTransactionsByAccount retrieves a page of transactions touching the account, newest first.
	// Returns the next page token, or nil when there are no more rows.
	ListTransactionsByAccount(ctx context.Context, accountID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for ledger transactions.
// The ledger is append-only.
type TransactionWriter interface {
	// AppendTransaction persists a validated transaction within the given database transaction.
	AppendTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error
}

// TransactionRepositoryFacade combines all ledger transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
