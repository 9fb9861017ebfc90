package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name          string             `json:"name" binding:"required,notblank"`
	AccountType   domain.AccountType `json:"accountType" binding:"required,oneof=ASSET LIABILITY EQUITY REVENUE EXPENSE"`
	NormalBalance domain.BalanceSide `json:"normalBalance" binding:"omitempty,oneof=DEBIT CREDIT"` // Defaults from accountType
	Role          domain.AccountRole `json:"role" binding:"omitempty,oneof=NONE CAPITAL DRAWINGS COGS"`
	Description   string             `json:"description"` // Optional
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Name          string             `json:"name"`
	AccountType   domain.AccountType `json:"accountType"`
	NormalBalance domain.BalanceSide `json:"normalBalance"`
	Role          domain.AccountRole `json:"role"`
	Description   string             `json:"description"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		AccountType:   acc.AccountType,
		NormalBalance: acc.NormalBalance,
		Role:          acc.Role,
		Description:   acc.Description,
		CreatedAt:     acc.CreatedAt,
		CreatedBy:     acc.CreatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}

// ListAccountsResponse wraps the chart of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID     string             `json:"accountID"`
	Name          string             `json:"name"`
	AsOf          string             `json:"asOf"`
	DebitTotal    decimal.Decimal    `json:"debitTotal"`
	CreditTotal   decimal.Decimal    `json:"creditTotal"`
	Balance       decimal.Decimal    `json:"balance"`
	BalanceType   domain.BalanceSide `json:"balanceType"`
	BalanceAmount decimal.Decimal    `json:"balanceAmount"`
}

// ToAccountBalanceResponse converts a computed balance to its DTO.
func ToAccountBalanceResponse(acc *domain.Account, bal *domain.AccountBalance, asOf time.Time) AccountBalanceResponse {
	return AccountBalanceResponse{
		AccountID:     acc.AccountID,
		Name:          acc.Name,
		AsOf:          asOf.Format(DateLayout),
		DebitTotal:    bal.DebitTotal,
		CreditTotal:   bal.CreditTotal,
		Balance:       bal.Balance,
		BalanceType:   bal.BalanceType,
		BalanceAmount: bal.BalanceAmount,
	}
}
