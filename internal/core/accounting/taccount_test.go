package accounting_test

import (
	"testing"

	"github.com/SscSPs/erp_ledger/internal/core/accounting"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTAccount_RunningBalance(t *testing.T) {
	cash := account("cash", "Cash", domain.Asset)
	// Supplied out of order; the replay sorts by date.
	txns := []domain.Transaction{
		txn("t3", "2024-01-03", "cash", "sales", "100"),
		txn("t1", "2024-01-01", "cash", "capital", "500"),
		txn("other", "2024-01-02", "rent", "payable", "999"),
		txn("t2", "2024-01-02", "supplies", "cash", "200"),
	}

	ta := accounting.BuildTAccount(cash, txns)

	require.Len(t, ta.Entries, 3)
	assert.Equal(t, "t1", ta.Entries[0].TransactionID)
	assert.Equal(t, "t2", ta.Entries[1].TransactionID)
	assert.Equal(t, "t3", ta.Entries[2].TransactionID)
	assertDecimal(t, "500", ta.Entries[0].RunningBalance)
	assertDecimal(t, "300", ta.Entries[1].RunningBalance)
	assertDecimal(t, "400", ta.Entries[2].RunningBalance)
	assertDecimal(t, "200", ta.Entries[1].Credit)
	assertDecimal(t, "0", ta.Entries[1].Debit)
	assertDecimal(t, "600", ta.TotalDebits)
	assertDecimal(t, "200", ta.TotalCredits)
	assertDecimal(t, "400", ta.EndingBalance)
	assert.Equal(t, domain.Debit, ta.BalanceSide)
}

func TestBuildTAccount_CreditNormalAccount(t *testing.T) {
	payable := account("ap", "Accounts Payable", domain.Liability)
	txns := []domain.Transaction{
		txn("t1", "2024-02-01", "inventory", "ap", "800"),
		txn("t2", "2024-02-10", "ap", "cash", "300"),
	}

	ta := accounting.BuildTAccount(payable, txns)

	require.Len(t, ta.Entries, 2)
	assertDecimal(t, "800", ta.Entries[0].RunningBalance)
	assertDecimal(t, "500", ta.Entries[1].RunningBalance)
	assertDecimal(t, "500", ta.EndingBalance)
	assert.Equal(t, domain.Credit, ta.BalanceSide)
}

func TestBuildTAccount_SameDateKeepsInputOrder(t *testing.T) {
	cash := account("cash", "Cash", domain.Asset)
	txns := []domain.Transaction{
		txn("b", "2024-01-01", "cash", "sales", "10"),
		txn("a", "2024-01-01", "rent", "cash", "4"),
	}

	ta := accounting.BuildTAccount(cash, txns)

	require.Len(t, ta.Entries, 2)
	assert.Equal(t, "b", ta.Entries[0].TransactionID)
	assert.Equal(t, "a", ta.Entries[1].TransactionID)
}

func TestBuildTAccount_Empty(t *testing.T) {
	ta := accounting.BuildTAccount(account("cash", "Cash", domain.Asset), nil)

	assert.Empty(t, ta.Entries)
	assertDecimal(t, "0", ta.EndingBalance)
	assert.Equal(t, domain.Credit, ta.BalanceSide)
}

func TestBuildTAccount_FallsBackToTypeForMissingNormalBalance(t *testing.T) {
	acc := account("rent", "Rent Expense", domain.Expense)
	acc.NormalBalance = ""

	ta := accounting.BuildTAccount(acc, []domain.Transaction{txn("t1", "2024-01-01", "rent", "cash", "90")})

	require.Len(t, ta.Entries, 1)
	assertDecimal(t, "90", ta.Entries[0].RunningBalance)
}

func TestBuildTAccount_SettledAccountEndsOnCreditSide(t *testing.T) {
	cash := account("cash", "Cash", domain.Asset)
	txns := []domain.Transaction{
		txn("t1", "2024-01-01", "cash", "sales", "300"),
		txn("t2", "2024-01-02", "rent", "cash", "300"),
	}

	ta := accounting.BuildTAccount(cash, txns)
	assertDecimal(t, "0", ta.EndingBalance)
	assert.Equal(t, domain.Credit, ta.BalanceSide)

	bal := accounting.ComputeBalance(cash, txns)
	assertDecimal(t, "0", bal.Balance)
	assert.Equal(t, domain.Debit, bal.BalanceType)
}
