package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the append-only ledger_transactions table.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	DebitAccountID  string          `db:"debit_account_id"`
	CreditAccountID string          `db:"credit_account_id"`
	Amount          decimal.Decimal `db:"amount"` // NUMERIC(19,4), always > 0
	AuditFields
}
