package accounting_test

import (
	"math/rand"
	"testing"

	"github.com/SscSPs/erp_ledger/internal/core/accounting"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallBusinessChart() []domain.Account {
	return []domain.Account{
		account("cash", "Cash", domain.Asset),
		account("ar", "Accounts Receivable", domain.Asset),
		account("inventory", "Inventory", domain.Asset),
		account("ap", "Accounts Payable", domain.Liability),
		withRole(account("capital", "Owner's Capital", domain.Equity), domain.RoleCapital),
		withRole(account("drawings", "Drawings", domain.Equity), domain.RoleDrawings),
		account("sales", "Sales Revenue", domain.Revenue),
		withRole(account("cogs", "Cost of Goods Sold", domain.Expense), domain.RoleCOGS),
		account("rent", "Rent Expense", domain.Expense),
		account("wages", "Salaries Expense", domain.Expense),
	}
}

func smallBusinessMonth() []domain.Transaction {
	return []domain.Transaction{
		txn("t1", "2024-03-01", "cash", "capital", "10000"),
		txn("t2", "2024-03-02", "inventory", "ap", "4000"),
		txn("t3", "2024-03-05", "cash", "sales", "3000"),
		txn("t4", "2024-03-05", "cogs", "inventory", "1800"),
		txn("t5", "2024-03-10", "ar", "sales", "1500"),
		txn("t6", "2024-03-15", "rent", "cash", "900"),
		txn("t7", "2024-03-20", "wages", "cash", "1100"),
		txn("t8", "2024-03-25", "drawings", "cash", "500"),
		txn("t9", "2024-03-28", "ap", "cash", "2500"),
	}
}

func TestBuildTrialBalance_SimplePair(t *testing.T) {
	accounts := []domain.Account{
		account("cash", "Cash", domain.Asset),
		account("rev", "Revenue", domain.Revenue),
	}
	txns := []domain.Transaction{txn("t1", "2024-01-01", "cash", "rev", "1000")}

	tb := accounting.BuildTrialBalance(accounts, txns)

	require.Len(t, tb.Rows, 2)
	assert.Equal(t, "cash", tb.Rows[0].AccountID)
	assertDecimal(t, "1000", tb.Rows[0].Debit)
	assertDecimal(t, "0", tb.Rows[0].Credit)
	assert.Equal(t, "rev", tb.Rows[1].AccountID)
	assertDecimal(t, "0", tb.Rows[1].Debit)
	assertDecimal(t, "1000", tb.Rows[1].Credit)
	assertDecimal(t, "1000", tb.TotalDebits)
	assertDecimal(t, "1000", tb.TotalCredits)
	assertDecimal(t, "0", tb.Discrepancy)
	assert.True(t, tb.IsBalanced)
	assert.Equal(t, domain.StatusBalanced, tb.Status)
	assertDecimal(t, "1000", accounting.ComputeNetProfit(accounts, txns))
}

func TestBuildTrialBalance_SkipsZeroBalanceAccounts(t *testing.T) {
	tb := accounting.BuildTrialBalance(smallBusinessChart(), []domain.Transaction{
		txn("t1", "2024-01-01", "cash", "sales", "200"),
		txn("t2", "2024-01-02", "sales", "cash", "200"),
	})

	assert.Empty(t, tb.Rows)
	assert.True(t, tb.IsBalanced)
}

func TestBuildTrialBalance_UnbalancedDetection(t *testing.T) {
	accounts := []domain.Account{
		account("cash", "Cash", domain.Asset),
		account("rev", "Revenue", domain.Revenue),
	}
	// The credit leg references a mistyped account id that is not in the chart.
	txns := []domain.Transaction{txn("t1", "2024-01-01", "cash", "revv", "1000")}

	tb := accounting.BuildTrialBalance(accounts, txns)

	assertDecimal(t, "1000", tb.TotalDebits)
	assertDecimal(t, "0", tb.TotalCredits)
	assertDecimal(t, "1000", tb.Discrepancy)
	assert.False(t, tb.IsBalanced)
	assert.Equal(t, domain.StatusUnbalanced, tb.Status)
}

func TestBuildTrialBalance_ToleranceBoundary(t *testing.T) {
	accounts := []domain.Account{
		account("cash", "Cash", domain.Asset),
		account("rev", "Revenue", domain.Revenue),
	}

	tests := []struct {
		name     string
		orphan   string
		balanced bool
	}{
		{"below tolerance", "0.009", true},
		{"at tolerance", "0.01", false},
		{"above tolerance", "0.5", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txns := []domain.Transaction{
				txn("t1", "2024-01-01", "cash", "rev", "100"),
				txn("t2", "2024-01-01", "cash", "missing", tt.orphan),
			}
			tb := accounting.BuildTrialBalance(accounts, txns)
			assert.Equal(t, tt.balanced, tb.IsBalanced)
			assertDecimal(t, tt.orphan, tb.Discrepancy)
		})
	}
}

func TestBuildTrialBalance_AlwaysClosesForAcceptedEntries(t *testing.T) {
	accounts := smallBusinessChart()
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 25; round++ {
		var txns []domain.Transaction
		for i := 0; i < 40; i++ {
			debit := accounts[rng.Intn(len(accounts))]
			credit := accounts[rng.Intn(len(accounts))]
			cents := decimal.New(int64(rng.Intn(1_000_000)), -2)

			entry, err := accounting.ValidateEntry(domain.EntryDraft{
				Date:            day("2024-01-01").AddDate(0, 0, rng.Intn(365)),
				Description:     "generated",
				DebitAccountID:  debit.AccountID,
				CreditAccountID: credit.AccountID,
				Amount:          &cents,
			})
			if err != nil {
				continue
			}
			txns = append(txns, entry)
		}

		tb := accounting.BuildTrialBalance(accounts, txns)
		assert.Truef(t, tb.IsBalanced, "round %d: debits %s credits %s", round, tb.TotalDebits, tb.TotalCredits)
		assert.True(t, tb.TotalDebits.Equal(tb.TotalCredits))

		sheet := accounting.BuildBalanceSheet(accounts, txns)
		assert.Truef(t, sheet.IsBalanced, "round %d: discrepancy %s", round, sheet.Discrepancy)
	}
}

func TestBuildIncomeStatement_WithCOGS(t *testing.T) {
	stmt := accounting.BuildIncomeStatement(smallBusinessChart(), smallBusinessMonth())

	assertDecimal(t, "4500", stmt.Revenue)
	assertDecimal(t, "1800", stmt.COGS)
	assertDecimal(t, "2700", stmt.GrossProfit)
	assertDecimal(t, "2000", stmt.OperatingExpenses)
	assertDecimal(t, "700", stmt.NetProfit)
	assert.Len(t, stmt.RevenueLines, 1)
	assert.Len(t, stmt.ExpenseLines, 3)
	assert.Equal(t, domain.RoleCOGS, stmt.ExpenseLines[0].Role)

	// Gross profit less non-COGS expenses reduces to revenue less all expenses.
	assert.True(t, stmt.NetProfit.Equal(accounting.ComputeNetProfit(smallBusinessChart(), smallBusinessMonth())))
}

func TestBuildIncomeStatement_NoCOGSAccountMatchesNetProfit(t *testing.T) {
	accounts := []domain.Account{
		account("cash", "Cash", domain.Asset),
		account("sales", "Sales Revenue", domain.Revenue),
		account("rent", "Rent Expense", domain.Expense),
	}
	txns := []domain.Transaction{
		txn("t1", "2024-01-01", "cash", "sales", "800"),
		txn("t2", "2024-01-02", "rent", "cash", "350"),
	}

	stmt := accounting.BuildIncomeStatement(accounts, txns)

	assertDecimal(t, "0", stmt.COGS)
	assertDecimal(t, "800", stmt.GrossProfit)
	assertDecimal(t, "350", stmt.OperatingExpenses)
	assert.True(t, stmt.NetProfit.Equal(accounting.ComputeNetProfit(accounts, txns)))
}

func TestBuildIncomeStatement_LegacyNameMatchesCOGS(t *testing.T) {
	accounts := []domain.Account{
		account("cash", "Cash", domain.Asset),
		account("sales", "Sales Revenue", domain.Revenue),
		account("cogs", "Cost of Goods Sold", domain.Expense), // no explicit role
	}
	txns := []domain.Transaction{
		txn("t1", "2024-01-01", "cash", "sales", "1000"),
		txn("t2", "2024-01-01", "cogs", "cash", "600"),
	}

	stmt := accounting.BuildIncomeStatement(accounts, txns)

	assertDecimal(t, "600", stmt.COGS)
	assertDecimal(t, "400", stmt.GrossProfit)
	assertDecimal(t, "0", stmt.OperatingExpenses)
	assertDecimal(t, "400", stmt.NetProfit)
}

func TestBuildIncomeStatement_SumsMultipleCOGSAccounts(t *testing.T) {
	accounts := []domain.Account{
		account("cash", "Cash", domain.Asset),
		account("sales", "Sales Revenue", domain.Revenue),
		withRole(account("cogs-goods", "Goods", domain.Expense), domain.RoleCOGS),
		withRole(account("cogs-freight", "Freight In", domain.Expense), domain.RoleCOGS),
	}
	txns := []domain.Transaction{
		txn("t1", "2024-01-01", "cash", "sales", "1000"),
		txn("t2", "2024-01-01", "cogs-goods", "cash", "300"),
		txn("t3", "2024-01-01", "cogs-freight", "cash", "50"),
	}

	stmt := accounting.BuildIncomeStatement(accounts, txns)
	assertDecimal(t, "350", stmt.COGS)
	assertDecimal(t, "650", stmt.NetProfit)
}

func TestBuildBalanceSheet_Balanced(t *testing.T) {
	sheet := accounting.BuildBalanceSheet(smallBusinessChart(), smallBusinessMonth())

	// cash 8000, receivables 1500, inventory 2200
	assertDecimal(t, "11700", sheet.TotalAssets)
	assertDecimal(t, "1500", sheet.TotalLiabilities)
	assertDecimal(t, "10000", sheet.Capital)
	assertDecimal(t, "500", sheet.Drawings)
	assertDecimal(t, "700", sheet.NetProfit)
	assertDecimal(t, "10200", sheet.TotalEquity)
	assertDecimal(t, "0", sheet.Discrepancy)
	assert.True(t, sheet.IsBalanced)
	assert.Equal(t, domain.StatusBalanced, sheet.Status)
	assert.Len(t, sheet.Assets, 3)
	assert.Len(t, sheet.Liabilities, 1)
	require.Len(t, sheet.Equity, 2)
	assertDecimal(t, "-500", sheet.Equity[1].NetAmount)
}

func TestBuildBalanceSheet_MissingDistinguishedAccounts(t *testing.T) {
	accounts := []domain.Account{
		account("cash", "Cash", domain.Asset),
		account("loan", "Bank Loan", domain.Liability),
		account("sales", "Sales Revenue", domain.Revenue),
	}
	txns := []domain.Transaction{
		txn("t1", "2024-01-01", "cash", "loan", "5000"),
		txn("t2", "2024-01-02", "cash", "sales", "700"),
	}

	sheet := accounting.BuildBalanceSheet(accounts, txns)

	assertDecimal(t, "0", sheet.Capital)
	assertDecimal(t, "0", sheet.Drawings)
	assertDecimal(t, "700", sheet.TotalEquity)
	assertDecimal(t, "5700", sheet.TotalAssets)
	assert.True(t, sheet.IsBalanced)
	assert.Empty(t, sheet.Equity)
}

func TestBuildBalanceSheet_UnroledEquityIsNotCapital(t *testing.T) {
	accounts := []domain.Account{
		account("cash", "Cash", domain.Asset),
		withRole(account("capital", "Owner's Capital", domain.Equity), domain.RoleCapital),
		account("retained", "Retained Earnings", domain.Equity),
	}
	txns := []domain.Transaction{
		txn("t1", "2024-01-01", "cash", "capital", "1000"),
		txn("t2", "2024-01-02", "cash", "retained", "500"),
	}

	sheet := accounting.BuildBalanceSheet(accounts, txns)

	assertDecimal(t, "1500", sheet.TotalAssets)
	assertDecimal(t, "1000", sheet.Capital)
	assertDecimal(t, "1000", sheet.TotalEquity)
	assertDecimal(t, "500", sheet.Discrepancy)
	assert.False(t, sheet.IsBalanced)
	assert.Equal(t, domain.StatusUnbalanced, sheet.Status)

	require.Len(t, sheet.Equity, 2)
	assert.Equal(t, "retained", sheet.Equity[1].AccountID)
	assert.Equal(t, domain.RoleNone, sheet.Equity[1].Role)
	assertDecimal(t, "500", sheet.Equity[1].NetAmount)
}

func TestBuildBalanceSheet_Unbalanced(t *testing.T) {
	accounts := []domain.Account{
		account("cash", "Cash", domain.Asset),
		account("loan", "Bank Loan", domain.Liability),
	}
	txns := []domain.Transaction{txn("t1", "2024-01-01", "cash", "lost", "250")}

	sheet := accounting.BuildBalanceSheet(accounts, txns)

	assert.False(t, sheet.IsBalanced)
	assert.Equal(t, domain.StatusUnbalanced, sheet.Status)
	assertDecimal(t, "250", sheet.Discrepancy)
}

func TestReports_Idempotent(t *testing.T) {
	accounts := smallBusinessChart()
	txns := smallBusinessMonth()

	assert.Equal(t, accounting.BuildTrialBalance(accounts, txns), accounting.BuildTrialBalance(accounts, txns))
	assert.Equal(t, accounting.BuildIncomeStatement(accounts, txns), accounting.BuildIncomeStatement(accounts, txns))
	assert.Equal(t, accounting.BuildBalanceSheet(accounts, txns), accounting.BuildBalanceSheet(accounts, txns))
	assert.Equal(t, accounting.BuildDashboard(accounts, txns), accounting.BuildDashboard(accounts, txns))
}

func TestReports_DoNotMutateInputs(t *testing.T) {
	accounts := smallBusinessChart()
	txns := smallBusinessMonth()
	txns[0], txns[8] = txns[8], txns[0]
	before := append([]domain.Transaction(nil), txns...)

	accounting.BuildTrialBalance(accounts, txns)
	accounting.BuildTAccount(accounts[0], txns)

	assert.Equal(t, before, txns)
}

func TestBuildDashboard(t *testing.T) {
	summary := accounting.BuildDashboard(smallBusinessChart(), smallBusinessMonth())

	assertDecimal(t, "11700", summary.TotalAssets)
	assertDecimal(t, "1500", summary.TotalLiabilities)
	assertDecimal(t, "10200", summary.TotalEquity)
	assertDecimal(t, "4500", summary.TotalRevenue)
	assertDecimal(t, "3800", summary.TotalExpenses)
	assertDecimal(t, "700", summary.NetProfit)
	assert.Equal(t, 10, summary.AccountCount)
	assert.Equal(t, 9, summary.TransactionCount)
	assert.True(t, summary.IsBalanced)
}
