// Package accounting holds the double-entry ledger engine: per-account balances, net profit,
// the financial statements derived from them, the gate every journal entry passes before it is
// appended, and the T-account replay.
//
// Every function in this package is a pure transformation over the accounts and transactions
// it is given. Nothing is cached and inputs are never modified, so callers may invoke them
// concurrently on shared snapshots.
package accounting

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeBalance sums every transaction leg that references the account.
// An account with no matching transactions, or one that is unknown to the transaction set,
// yields an all-zero balance.
func ComputeBalance(account domain.Account, transactions []domain.Transaction) domain.AccountBalance {
	debitTotal := decimal.Zero
	creditTotal := decimal.Zero

	for _, txn := range transactions {
		// Both legs are checked independently.
		if txn.DebitAccountID == account.AccountID {
			debitTotal = debitTotal.Add(txn.Amount)
		}
		if txn.CreditAccountID == account.AccountID {
			creditTotal = creditTotal.Add(txn.Amount)
		}
	}

	balance := debitTotal.Sub(creditTotal)
	balanceType := domain.Debit
	if balance.IsNegative() {
		balanceType = domain.Credit
	}

	return domain.AccountBalance{
		DebitTotal:    debitTotal,
		CreditTotal:   creditTotal,
		Balance:       balance,
		BalanceType:   balanceType,
		BalanceAmount: balance.Abs(),
	}
}

// debitPositive returns debits minus credits, the natural reading for Asset and Expense accounts.
func debitPositive(b domain.AccountBalance) decimal.Decimal {
	return b.DebitTotal.Sub(b.CreditTotal)
}

// creditPositive returns credits minus debits, the natural reading for Liability, Equity and
// Revenue accounts.
func creditPositive(b domain.AccountBalance) decimal.Decimal {
	return b.CreditTotal.Sub(b.DebitTotal)
}

// balanceTolerance is the discrepancy at which a report stops being shown as balanced.
func balanceTolerance() decimal.Decimal {
	return decimal.New(1, -2)
}

// isBalanced compares two totals against balanceTolerance and returns the absolute discrepancy.
func isBalanced(left, right decimal.Decimal) (bool, decimal.Decimal) {
	discrepancy := left.Sub(right).Abs()
	return discrepancy.LessThan(balanceTolerance()), discrepancy
}

func statusOf(balanced bool) domain.ReportStatus {
	if balanced {
		return domain.StatusBalanced
	}
	return domain.StatusUnbalanced
}
