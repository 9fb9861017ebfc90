package domain

import "strings"

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// AccountTypes lists every permitted account type in chart order.
var AccountTypes = []AccountType{Asset, Liability, Equity, Revenue, Expense}

// IsValid reports whether t is one of the five account types.
func (t AccountType) IsValid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// BalanceSide is the side of the ledger an amount sits on.
type BalanceSide string

const (
	Debit  BalanceSide = "DEBIT"
	Credit BalanceSide = "CREDIT"
)

// IsValid reports whether s is DEBIT or CREDIT.
func (s BalanceSide) IsValid() bool {
	return s == Debit || s == Credit
}

// DefaultNormalBalance returns the conventional normal balance for an account type.
// Asset and Expense accounts increase on the debit side, everything else on the credit side.
func DefaultNormalBalance(t AccountType) BalanceSide {
	if t == Asset || t == Expense {
		return Debit
	}
	return Credit
}

// AccountRole tags accounts that the financial statements treat specially.
type AccountRole string

const (
	RoleNone     AccountRole = "NONE"
	RoleCapital  AccountRole = "CAPITAL"
	RoleDrawings AccountRole = "DRAWINGS"
	RoleCOGS     AccountRole = "COGS"
)

// IsValid reports whether r is a known role. The empty role is treated as NONE.
func (r AccountRole) IsValid() bool {
	switch r {
	case "", RoleNone, RoleCapital, RoleDrawings, RoleCOGS:
		return true
	}
	return false
}

// Conventional account names that older charts use instead of an explicit role.
const (
	CapitalAccountName  = "Owner's Capital"
	DrawingsAccountName = "Drawings"
	COGSAccountName     = "Cost of Goods Sold"
)

// Account represents a ledger account in the chart of accounts.
// Accounts are immutable once created.
type Account struct {
	AccountID     string      `json:"accountID"`
	Name          string      `json:"name"`
	AccountType   AccountType `json:"accountType"`
	NormalBalance BalanceSide `json:"normalBalance"`
	Role          AccountRole `json:"role"`
	Description   string      `json:"description"`
	AuditFields
}

// EffectiveRole returns the explicit role when one is set, otherwise the role implied by
// the conventional account name.
func (a Account) EffectiveRole() AccountRole {
	if a.Role != "" && a.Role != RoleNone {
		return a.Role
	}
	switch strings.TrimSpace(a.Name) {
	case CapitalAccountName:
		return RoleCapital
	case DrawingsAccountName:
		return RoleDrawings
	case COGSAccountName:
		return RoleCOGS
	}
	return RoleNone
}
