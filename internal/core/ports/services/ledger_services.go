package services

import (
	"context"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
)

// LedgerReaderSvc defines read operations for posted transactions
type LedgerReaderSvc interface {
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)
	ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error)
	ListTransactionsByAccount(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// LedgerWriterSvc defines the journal entry operations
type LedgerWriterSvc interface {
	// PostEntry runs the entry through the ledger gate and appends it on acceptance.
	PostEntry(ctx context.Context, draft domain.EntryDraft, userID string) (*domain.Transaction, error)

	// CheckEntry runs the ledger gate without persisting anything.
	CheckEntry(ctx context.Context, draft domain.EntryDraft) error
}

// LedgerSvcFacade combines the ledger service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
