package models

import "database/sql"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID     string         `db:"account_id"`
	Name          string         `db:"name"`
	AccountType   AccountType    `db:"account_type"`
	NormalBalance string         `db:"normal_balance"`
	Role          string         `db:"role"`
	Description   sql.NullString `db:"description"` // Nullable
	AuditFields
}
