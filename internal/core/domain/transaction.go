package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a single journal entry: one debit leg and one credit leg for the same amount.
// Transactions are append-only; corrections are made with offsetting entries.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	Date            time.Time       `json:"date"`
	Description     string          `json:"description"`
	DebitAccountID  string          `json:"debitAccountID"`
	CreditAccountID string          `json:"creditAccountID"`
	Amount          decimal.Decimal `json:"amount"` // Always positive
	AuditFields
}

// Touches reports whether the transaction debits or credits the given account.
func (t Transaction) Touches(accountID string) bool {
	return t.DebitAccountID == accountID || t.CreditAccountID == accountID
}

// EntryDraft carries the fields of a journal entry form before it passes the ledger gate.
// Amount is a pointer so a missing amount can be told apart from zero.
type EntryDraft struct {
	Date            time.Time
	Description     string
	DebitAccountID  string
	CreditAccountID string
	Amount          *decimal.Decimal
}
