package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/accounting"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvcFacade interface
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txnRepo     portsrepo.TransactionReader
}

// AccountServiceOption is a functional option for configuring the account service
type AccountServiceOption func(*accountService)

// WithAccountClock overrides the clock used for audit timestamps.
func WithAccountClock(clock func() time.Time) AccountServiceOption {
	return func(s *accountService) {
		s.clock = clock
	}
}

// NewAccountService creates a new account service with the provided options
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, txnRepo portsrepo.TransactionReader, options ...AccountServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, userID string) (*domain.Account, error) {
	account, err := newAccountFromRequest(req)
	if err != nil {
		s.LogWarn(ctx, "Rejected account creation", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, err
	}

	account.AccountID = uuid.NewString()
	account.AuditFields = domain.AuditFields{
		CreatedAt: s.Now(),
		CreatedBy: userID,
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("name", account.Name))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	s.LogInfo(ctx, "Account created successfully",
		slog.String("account_id", account.AccountID),
		slog.String("account_type", string(account.AccountType)),
		slog.String("role", string(account.Role)))
	return &account, nil
}

// newAccountFromRequest applies defaults and checks the type, normal balance and role pairing.
func newAccountFromRequest(req dto.CreateAccountRequest) (domain.Account, error) {
	return accounting.NormalizeAccount(domain.Account{
		Name:          req.Name,
		AccountType:   req.AccountType,
		NormalBalance: req.NormalBalance,
		Role:          req.Role,
		Description:   req.Description,
	})
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		s.LogDebug(ctx, "Account lookup failed", slog.String("account_id", accountID), slog.String("error", err.Error()))
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

func (s *accountService) GetAccountBalance(ctx context.Context, accountID string, asOf time.Time) (*domain.Account, *domain.AccountBalance, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, nil, err
	}

	cutoff := accounting.CalendarDate(asOf)
	txns, err := s.txnRepo.ListTransactions(ctx, portsrepo.TransactionFilter{AsOf: &cutoff})
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for balance", slog.String("account_id", accountID))
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	bal := accounting.ComputeBalance(*account, txns)
	return account, &bal, nil
}

func (s *accountService) GetTAccount(ctx context.Context, accountID string) (*domain.TAccount, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListTransactions(ctx, portsrepo.TransactionFilter{})
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for T-account", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	ta := accounting.BuildTAccount(*account, txns)
	return &ta, nil
}
