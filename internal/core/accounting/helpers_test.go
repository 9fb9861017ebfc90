package accounting_test

import (
	"testing"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func account(id, name string, accountType domain.AccountType) domain.Account {
	return domain.Account{
		AccountID:     id,
		Name:          name,
		AccountType:   accountType,
		NormalBalance: domain.DefaultNormalBalance(accountType),
		Role:          domain.RoleNone,
	}
}

func withRole(acc domain.Account, role domain.AccountRole) domain.Account {
	acc.Role = role
	return acc
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func txn(id, date, debitID, creditID, amount string) domain.Transaction {
	return domain.Transaction{
		TransactionID:   id,
		Date:            day(date),
		Description:     "entry " + id,
		DebitAccountID:  debitID,
		CreditAccountID: creditID,
		Amount:          decimal.RequireFromString(amount),
	}
}

func amountPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s %v", want, got.String(), msgAndArgs)
}

func ids(txns []domain.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.TransactionID
	}
	return out
}
