package dto

import (
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TrialBalanceRowResponse represents a row in the trial balance report response
type TrialBalanceRowResponse struct {
	AccountID   string          `json:"accountID"`
	AccountName string          `json:"accountName"`
	AccountType string          `json:"accountType"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// TrialBalanceResponse represents the trial balance report response
type TrialBalanceResponse struct {
	AsOf   string                    `json:"asOf"`
	Rows   []TrialBalanceRowResponse `json:"rows"`
	Totals struct {
		Debit  decimal.Decimal `json:"debit"`
		Credit decimal.Decimal `json:"credit"`
	} `json:"totals"`
	Discrepancy decimal.Decimal     `json:"discrepancy"`
	Status      domain.ReportStatus `json:"status"`
}

// AccountAmountResponse represents an account with its amount in a financial report
type AccountAmountResponse struct {
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Role      string          `json:"role,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
}

// IncomeStatementResponse represents the profit and loss report response
type IncomeStatementResponse struct {
	FromDate string                  `json:"fromDate"`
	ToDate   string                  `json:"toDate"`
	Revenue  []AccountAmountResponse `json:"revenue"`
	Expenses []AccountAmountResponse `json:"expenses"`
	Summary  struct {
		TotalRevenue      decimal.Decimal `json:"totalRevenue"`
		CostOfGoodsSold   decimal.Decimal `json:"costOfGoodsSold"`
		GrossProfit       decimal.Decimal `json:"grossProfit"`
		OperatingExpenses decimal.Decimal `json:"operatingExpenses"`
		NetProfit         decimal.Decimal `json:"netProfit"`
	} `json:"summary"`
}

// BalanceSheetResponse represents the balance sheet report response
type BalanceSheetResponse struct {
	AsOf        string                  `json:"asOf"`
	Assets      []AccountAmountResponse `json:"assets"`
	Liabilities []AccountAmountResponse `json:"liabilities"`
	Equity      []AccountAmountResponse `json:"equity"`
	Summary     struct {
		TotalAssets      decimal.Decimal `json:"totalAssets"`
		TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
		Capital          decimal.Decimal `json:"capital"`
		NetProfit        decimal.Decimal `json:"netProfit"`
		Drawings         decimal.Decimal `json:"drawings"`
		TotalEquity      decimal.Decimal `json:"totalEquity"`
	} `json:"summary"`
	Discrepancy decimal.Decimal     `json:"discrepancy"`
	Status      domain.ReportStatus `json:"status"`
}

// DashboardResponse carries the home dashboard figures.
type DashboardResponse struct {
	AsOf             string          `json:"asOf"`
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

// NetProfitResponse is revenue less expenses up to and including AsOf.
type NetProfitResponse struct {
	AsOf      string          `json:"asOf"`
	NetProfit decimal.Decimal `json:"netProfit"`
}

// TAccountEntryResponse is one line of a T-account.
type TAccountEntryResponse struct {
	TransactionID  string          `json:"transactionID"`
	Date           string          `json:"date"`
	Description    string          `json:"description"`
	Debit          decimal.Decimal `json:"debit"`
	Credit         decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal `json:"runningBalance"`
}

// TAccountResponse is the T-account view of a single account.
type TAccountResponse struct {
	Account       AccountResponse         `json:"account"`
	Entries       []TAccountEntryResponse `json:"entries"`
	TotalDebits   decimal.Decimal         `json:"totalDebits"`
	TotalCredits  decimal.Decimal         `json:"totalCredits"`
	EndingBalance decimal.Decimal         `json:"endingBalance"`
	BalanceSide   domain.BalanceSide      `json:"balanceSide"`
}

// ToTrialBalanceResponse converts a domain trial balance to its DTO.
func ToTrialBalanceResponse(tb *domain.TrialBalance, asOf time.Time) TrialBalanceResponse {
	resp := TrialBalanceResponse{
		AsOf:        asOf.Format(DateLayout),
		Rows:        make([]TrialBalanceRowResponse, len(tb.Rows)),
		Discrepancy: tb.Discrepancy,
		Status:      tb.Status,
	}
	for i, row := range tb.Rows {
		resp.Rows[i] = TrialBalanceRowResponse{
			AccountID:   row.AccountID,
			AccountName: row.AccountName,
			AccountType: string(row.AccountType),
			Debit:       row.Debit,
			Credit:      row.Credit,
		}
	}
	resp.Totals.Debit = tb.TotalDebits
	resp.Totals.Credit = tb.TotalCredits
	return resp
}

// ToIncomeStatementResponse converts a domain income statement to its DTO.
func ToIncomeStatementResponse(stmt *domain.IncomeStatement, from, to time.Time) IncomeStatementResponse {
	resp := IncomeStatementResponse{
		FromDate: from.Format(DateLayout),
		ToDate:   to.Format(DateLayout),
		Revenue:  toAmountResponses(stmt.RevenueLines),
		Expenses: toAmountResponses(stmt.ExpenseLines),
	}
	resp.Summary.TotalRevenue = stmt.Revenue
	resp.Summary.CostOfGoodsSold = stmt.COGS
	resp.Summary.GrossProfit = stmt.GrossProfit
	resp.Summary.OperatingExpenses = stmt.OperatingExpenses
	resp.Summary.NetProfit = stmt.NetProfit
	return resp
}

// ToBalanceSheetResponse converts a domain balance sheet to its DTO.
func ToBalanceSheetResponse(sheet *domain.BalanceSheet, asOf time.Time) BalanceSheetResponse {
	resp := BalanceSheetResponse{
		AsOf:        asOf.Format(DateLayout),
		Assets:      toAmountResponses(sheet.Assets),
		Liabilities: toAmountResponses(sheet.Liabilities),
		Equity:      toAmountResponses(sheet.Equity),
		Discrepancy: sheet.Discrepancy,
		Status:      sheet.Status,
	}
	resp.Summary.TotalAssets = sheet.TotalAssets
	resp.Summary.TotalLiabilities = sheet.TotalLiabilities
	resp.Summary.Capital = sheet.Capital
	resp.Summary.NetProfit = sheet.NetProfit
	resp.Summary.Drawings = sheet.Drawings
	resp.Summary.TotalEquity = sheet.TotalEquity
	return resp
}

// ToDashboardResponse converts the dashboard summary to its DTO.
func ToDashboardResponse(sum *domain.DashboardSummary, asOf time.Time) DashboardResponse {
	return DashboardResponse{
		AsOf:             asOf.Format(DateLayout),
		TotalAssets:      sum.TotalAssets,
		TotalLiabilities: sum.TotalLiabilities,
		TotalEquity:      sum.TotalEquity,
		TotalRevenue:     sum.TotalRevenue,
		TotalExpenses:    sum.TotalExpenses,
		NetProfit:        sum.NetProfit,
		AccountCount:     sum.AccountCount,
		TransactionCount: sum.TransactionCount,
		IsBalanced:       sum.IsBalanced,
	}
}

// ToNetProfitResponse wraps a net profit figure with its report date.
func ToNetProfitResponse(netProfit decimal.Decimal, asOf time.Time) NetProfitResponse {
	return NetProfitResponse{
		AsOf:      asOf.Format(DateLayout),
		NetProfit: netProfit,
	}
}

// ToTAccountResponse converts a T-account to its DTO.
func ToTAccountResponse(ta *domain.TAccount) TAccountResponse {
	resp := TAccountResponse{
		Account:       ToAccountResponse(&ta.Account),
		Entries:       make([]TAccountEntryResponse, len(ta.Entries)),
		TotalDebits:   ta.TotalDebits,
		TotalCredits:  ta.TotalCredits,
		EndingBalance: ta.EndingBalance,
		BalanceSide:   ta.BalanceSide,
	}
	for i, e := range ta.Entries {
		resp.Entries[i] = TAccountEntryResponse{
			TransactionID:  e.TransactionID,
			Date:           e.Date.Format(DateLayout),
			Description:    e.Description,
			Debit:          e.Debit,
			Credit:         e.Credit,
			RunningBalance: e.RunningBalance,
		}
	}
	return resp
}

func toAmountResponses(lines []domain.AccountAmount) []AccountAmountResponse {
	out := make([]AccountAmountResponse, len(lines))
	for i, l := range lines {
		out[i] = AccountAmountResponse{
			AccountID: l.AccountID,
			Name:      l.Name,
			Amount:    l.NetAmount,
		}
		if l.Role != domain.RoleNone {
			out[i].Role = string(l.Role)
		}
	}
	return out
}
