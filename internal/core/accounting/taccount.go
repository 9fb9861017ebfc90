package accounting

import (
	"sort"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildTAccount replays the account's transactions in date order, keeping a running balance
// on the account's normal side. Transactions on the same date keep their input order.
func BuildTAccount(account domain.Account, transactions []domain.Transaction) domain.TAccount {
	related := make([]domain.Transaction, 0)
	for _, txn := range transactions {
		if txn.Touches(account.AccountID) {
			related = append(related, txn)
		}
	}
	sort.SliceStable(related, func(i, j int) bool {
		return related[i].Date.Before(related[j].Date)
	})

	normal := account.NormalBalance
	if !normal.IsValid() {
		normal = domain.DefaultNormalBalance(account.AccountType)
	}

	entries := make([]domain.TAccountEntry, 0, len(related))
	running := decimal.Zero
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero

	for _, txn := range related {
		entry := domain.TAccountEntry{
			TransactionID: txn.TransactionID,
			Date:          txn.Date,
			Description:   txn.Description,
			Debit:         decimal.Zero,
			Credit:        decimal.Zero,
		}
		if txn.DebitAccountID == account.AccountID {
			entry.Debit = txn.Amount
			totalDebits = totalDebits.Add(txn.Amount)
		}
		if txn.CreditAccountID == account.AccountID {
			entry.Credit = txn.Amount
			totalCredits = totalCredits.Add(txn.Amount)
		}

		if normal == domain.Debit {
			running = running.Add(entry.Debit).Sub(entry.Credit)
		} else {
			running = running.Add(entry.Credit).Sub(entry.Debit)
		}
		entry.RunningBalance = running
		entries = append(entries, entry)
	}

	side := domain.Credit
	if totalDebits.GreaterThan(totalCredits) {
		side = domain.Debit
	}

	return domain.TAccount{
		Account:       account,
		Entries:       entries,
		TotalDebits:   totalDebits,
		TotalCredits:  totalCredits,
		EndingBalance: totalDebits.Sub(totalCredits).Abs(),
		BalanceSide:   side,
	}
}
