package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportStatus is the balancing badge shown on trial balance and balance sheet reports.
type ReportStatus string

const (
	StatusBalanced   ReportStatus = "BALANCED"
	StatusUnbalanced ReportStatus = "UNBALANCED"
)

// AccountBalance is the derived balance of one account over a transaction set.
// Balance is signed: positive means net debit.
type AccountBalance struct {
	DebitTotal    decimal.Decimal `json:"debitTotal"`
	CreditTotal   decimal.Decimal `json:"creditTotal"`
	Balance       decimal.Decimal `json:"balance"`
	BalanceType   BalanceSide     `json:"balanceType"`
	BalanceAmount decimal.Decimal `json:"balanceAmount"`
}

// TrialBalanceRow represents a single row in a trial balance report.
// Exactly one of Debit and Credit is non-zero.
type TrialBalanceRow struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType AccountType     `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalance lists every account with a non-zero balance under its debit or credit column.
type TrialBalance struct {
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebits  decimal.Decimal   `json:"totalDebits"`
	TotalCredits decimal.Decimal   `json:"totalCredits"`
	Discrepancy  decimal.Decimal   `json:"discrepancy"`
	IsBalanced   bool              `json:"isBalanced"`
	Status       ReportStatus      `json:"status"`
}

// AccountAmount represents an account with its amount on a financial statement,
// already signed by the statement's convention.
type AccountAmount struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Role      AccountRole     `json:"role"`
	NetAmount decimal.Decimal `json:"netAmount"`
}

// IncomeStatement is the profit and loss statement.
type IncomeStatement struct {
	RevenueLines      []AccountAmount `json:"revenueLines"`
	ExpenseLines      []AccountAmount `json:"expenseLines"`
	Revenue           decimal.Decimal `json:"revenue"`
	COGS              decimal.Decimal `json:"cogs"`
	GrossProfit       decimal.Decimal `json:"grossProfit"`
	OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
	NetProfit         decimal.Decimal `json:"netProfit"`
}

// BalanceSheet reports assets against liabilities plus equity.
type BalanceSheet struct {
	Assets           []AccountAmount `json:"assets"`
	Liabilities      []AccountAmount `json:"liabilities"`
	Equity           []AccountAmount `json:"equity"`
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	Capital          decimal.Decimal `json:"capital"`
	Drawings         decimal.Decimal `json:"drawings"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	Discrepancy      decimal.Decimal `json:"discrepancy"`
	IsBalanced       bool            `json:"isBalanced"`
	Status           ReportStatus    `json:"status"`
}

// TAccountEntry is one line of a T-account replay.
// Exactly one of Debit and Credit is non-zero.
type TAccountEntry struct {
	TransactionID  string          `json:"transactionID"`
	Date           time.Time       `json:"date"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// TAccount is the chronological two-column view of a single account.
type TAccount struct {
	Account       Account         `json:"account"`
	Entries       []TAccountEntry `json:"entries"`
	TotalDebits   decimal.Decimal `json:"totalDebits"`
	TotalCredits  decimal.Decimal `json:"totalCredits"`
	EndingBalance decimal.Decimal `json:"endingBalance"`
	BalanceSide   BalanceSide     `json:"balanceSide"`
}

// DashboardSummary is the headline figures shown on the home dashboard.
type DashboardSummary struct {
	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	NetProfit        decimal.Decimal `json:"netProfit"`
	AccountCount     int             `json:"accountCount"`
	TransactionCount int             `json:"transactionCount"`
	IsBalanced       bool            `json:"isBalanced"`
}
