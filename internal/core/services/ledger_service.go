package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/accounting"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/google/uuid"
)

// ErrUnknownAccount is returned when an entry references an account that is not in the chart.
var ErrUnknownAccount = fmt.Errorf("%w: account does not exist", apperrors.ErrValidation)

const defaultPageSize = 20

// ledgerService posts journal entries and reads the append-only ledger.
type ledgerService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionRepositoryWithTx
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock overrides the clock used for audit timestamps.
func WithLedgerClock(clock func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.clock = clock
	}
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(accountRepo portsrepo.AccountRepositoryFacade, txnRepo portsrepo.TransactionRepositoryWithTx, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// PostEntry validates the draft, confirms both accounts exist under a share lock and appends
// the transaction. Nothing is written when the gate rejects the entry.
func (s *ledgerService) PostEntry(ctx context.Context, draft domain.EntryDraft, userID string) (*domain.Transaction, error) {
	txn, err := accounting.ValidateEntry(draft)
	if err != nil {
		s.logRejection(ctx, err)
		return nil, err
	}

	tx, err := s.txnRepo.Begin(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to begin transaction for journal entry")
		return nil, err
	}
	defer func() {
		if rbErr := s.txnRepo.Rollback(ctx, tx); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back journal entry")
		}
	}()

	accounts, err := s.accountRepo.FindAccountsByIDsForShare(ctx, tx, []string{txn.DebitAccountID, txn.CreditAccountID})
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for journal entry")
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	if err := requireAccounts(accounts, txn.DebitAccountID, txn.CreditAccountID); err != nil {
		s.LogWarn(ctx, "Journal entry references an unknown account", slog.String("error", err.Error()))
		return nil, err
	}

	txn.TransactionID = uuid.NewString()
	txn.AuditFields = domain.AuditFields{
		CreatedAt: s.Now(),
		CreatedBy: userID,
	}

	if err := s.txnRepo.AppendTransaction(ctx, tx, txn); err != nil {
		s.LogError(ctx, err, "Failed to append transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to post entry: %w", err)
	}
	if err := s.txnRepo.Commit(ctx, tx); err != nil {
		s.LogError(ctx, err, "Failed to commit journal entry", slog.String("transaction_id", txn.TransactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("debit_account_id", txn.DebitAccountID),
		slog.String("credit_account_id", txn.CreditAccountID),
		slog.String("amount", txn.Amount.String()))
	return &txn, nil
}

// CheckEntry runs the same checks as PostEntry without writing anything.
func (s *ledgerService) CheckEntry(ctx context.Context, draft domain.EntryDraft) error {
	txn, err := accounting.ValidateEntry(draft)
	if err != nil {
		return err
	}
	accounts, err := s.accountRepo.FindAccountsByIDs(ctx, []string{txn.DebitAccountID, txn.CreditAccountID})
	if err != nil {
		s.LogError(ctx, err, "Failed to load accounts for entry check")
		return fmt.Errorf("failed to load accounts: %w", err)
	}
	return requireAccounts(accounts, txn.DebitAccountID, txn.CreditAccountID)
}

func requireAccounts(found map[string]domain.Account, ids ...string) error {
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownAccount, id)
		}
	}
	return nil
}

func (s *ledgerService) logRejection(ctx context.Context, err error) {
	var rejection *accounting.EntryRejection
	if errors.As(err, &rejection) {
		s.LogWarn(ctx, "Journal entry rejected", slog.String("reason", string(rejection.Reason)))
		return
	}
	s.LogWarn(ctx, "Journal entry rejected", slog.String("error", err.Error()))
}

func (s *ledgerService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		s.LogDebug(ctx, "Transaction lookup failed", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
		return nil, err
	}
	return txn, nil
}

func (s *ledgerService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter, err := filterFromParams(params)
	if err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}
	return txns, nil
}

func (s *ledgerService) ListTransactionsByAccount(ctx context.Context, accountID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPageSize
	}

	transactions, nextToken, err := s.txnRepo.ListTransactionsByAccount(ctx, accountID, limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions by account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	s.LogDebug(ctx, "Transactions listed for account", slog.String("account_id", accountID), slog.Int("count", len(transactions)))
	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(transactions),
		NextToken:    nextToken,
	}, nil
}

func filterFromParams(params dto.ListTransactionsParams) (portsrepo.TransactionFilter, error) {
	var filter portsrepo.TransactionFilter
	if v := strings.TrimSpace(params.FromDate); v != "" {
		from, err := time.Parse(dto.DateLayout, v)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid fromDate %q", apperrors.ErrValidation, v)
		}
		filter.From = &from
	}
	if v := strings.TrimSpace(params.ToDate); v != "" {
		to, err := time.Parse(dto.DateLayout, v)
		if err != nil {
			return filter, fmt.Errorf("%w: invalid toDate %q", apperrors.ErrValidation, v)
		}
		filter.AsOf = &to
	}
	if filter.From != nil && filter.AsOf != nil && filter.AsOf.Before(*filter.From) {
		return filter, fmt.Errorf("%w: toDate is before fromDate", apperrors.ErrValidation)
	}
	return filter, nil
}
