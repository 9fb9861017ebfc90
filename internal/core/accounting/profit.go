package accounting

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ComputeNetProfit returns total revenue minus total expenses.
// Revenue accounts are read credit-positive and Expense accounts debit-positive.
func ComputeNetProfit(accounts []domain.Account, transactions []domain.Transaction) decimal.Decimal {
	revenue := decimal.Zero
	expenses := decimal.Zero

	for _, acc := range accounts {
		switch acc.AccountType {
		case domain.Revenue:
			revenue = revenue.Add(creditPositive(ComputeBalance(acc, transactions)))
		case domain.Expense:
			expenses = expenses.Add(debitPositive(ComputeBalance(acc, transactions)))
		}
	}

	return revenue.Sub(expenses)
}
