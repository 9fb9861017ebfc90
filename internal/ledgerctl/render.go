package ledgerctl

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/shopspring/decimal"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func blankZero(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return money(d)
}

func renderTrialBalance(w io.Writer, tb dto.TrialBalanceResponse) error {
	fmt.Fprintf(w, "Trial balance as of %s\n\n", tb.AsOf)
	t := newTable(w)
	fmt.Fprintln(t, "Account\tType\tDebit\tCredit\t")
	for _, row := range tb.Rows {
		fmt.Fprintf(t, "%s\t%s\t%s\t%s\t\n", row.AccountName, row.AccountType, blankZero(row.Debit), blankZero(row.Credit))
	}
	fmt.Fprintf(t, "Total\t\t%s\t%s\t\n", money(tb.Totals.Debit), money(tb.Totals.Credit))
	if err := t.Flush(); err != nil {
		return err
	}
	return renderStatus(w, string(tb.Status), tb.Discrepancy)
}

func renderIncomeStatement(w io.Writer, stmt dto.IncomeStatementResponse) error {
	fmt.Fprintf(w, "Income statement %s to %s\n\n", stmt.FromDate, stmt.ToDate)
	t := newTable(w)
	renderSection(t, "Revenue", stmt.Revenue)
	renderSection(t, "Expenses", stmt.Expenses)
	fmt.Fprintf(t, "Total revenue\t%s\t\n", money(stmt.Summary.TotalRevenue))
	fmt.Fprintf(t, "Cost of goods sold\t%s\t\n", money(stmt.Summary.CostOfGoodsSold))
	fmt.Fprintf(t, "Gross profit\t%s\t\n", money(stmt.Summary.GrossProfit))
	fmt.Fprintf(t, "Operating expenses\t%s\t\n", money(stmt.Summary.OperatingExpenses))
	fmt.Fprintf(t, "Net profit\t%s\t\n", money(stmt.Summary.NetProfit))
	return t.Flush()
}

func renderBalanceSheet(w io.Writer, sheet dto.BalanceSheetResponse) error {
	fmt.Fprintf(w, "Balance sheet as of %s\n\n", sheet.AsOf)
	t := newTable(w)
	renderSection(t, "Assets", sheet.Assets)
	renderSection(t, "Liabilities", sheet.Liabilities)
	renderSection(t, "Equity", sheet.Equity)
	fmt.Fprintf(t, "Total assets\t%s\t\n", money(sheet.Summary.TotalAssets))
	fmt.Fprintf(t, "Total liabilities\t%s\t\n", money(sheet.Summary.TotalLiabilities))
	fmt.Fprintf(t, "Capital\t%s\t\n", money(sheet.Summary.Capital))
	fmt.Fprintf(t, "Net profit\t%s\t\n", money(sheet.Summary.NetProfit))
	fmt.Fprintf(t, "Drawings\t%s\t\n", money(sheet.Summary.Drawings))
	fmt.Fprintf(t, "Total equity\t%s\t\n", money(sheet.Summary.TotalEquity))
	if err := t.Flush(); err != nil {
		return err
	}
	return renderStatus(w, string(sheet.Status), sheet.Discrepancy)
}

func renderDashboard(w io.Writer, d dto.DashboardResponse) error {
	fmt.Fprintf(w, "Dashboard as of %s\n\n", d.AsOf)
	t := newTable(w)
	fmt.Fprintf(t, "Total assets\t%s\t\n", money(d.TotalAssets))
	fmt.Fprintf(t, "Total liabilities\t%s\t\n", money(d.TotalLiabilities))
	fmt.Fprintf(t, "Total equity\t%s\t\n", money(d.TotalEquity))
	fmt.Fprintf(t, "Total revenue\t%s\t\n", money(d.TotalRevenue))
	fmt.Fprintf(t, "Total expenses\t%s\t\n", money(d.TotalExpenses))
	fmt.Fprintf(t, "Net profit\t%s\t\n", money(d.NetProfit))
	fmt.Fprintf(t, "Accounts\t%d\t\n", d.AccountCount)
	fmt.Fprintf(t, "Transactions\t%d\t\n", d.TransactionCount)
	fmt.Fprintf(t, "Balanced\t%t\t\n", d.IsBalanced)
	return t.Flush()
}

func renderTAccount(w io.Writer, ta dto.TAccountResponse) error {
	fmt.Fprintf(w, "%s (%s, normal %s)\n\n", ta.Account.Name, ta.Account.AccountType, ta.Account.NormalBalance)
	t := newTable(w)
	fmt.Fprintln(t, "Date\tDescription\tDebit\tCredit\tBalance\t")
	for _, e := range ta.Entries {
		fmt.Fprintf(t, "%s\t%s\t%s\t%s\t%s\t\n", e.Date, e.Description, blankZero(e.Debit), blankZero(e.Credit), money(e.RunningBalance))
	}
	fmt.Fprintf(t, "Total\t\t%s\t%s\t\t\n", money(ta.TotalDebits), money(ta.TotalCredits))
	if err := t.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nEnding balance: %s %s\n", money(ta.EndingBalance), ta.BalanceSide)
	return err
}

func renderSection(t io.Writer, title string, lines []dto.AccountAmountResponse) {
	fmt.Fprintf(t, "%s\t\t\n", title)
	for _, l := range lines {
		fmt.Fprintf(t, "  %s\t%s\t\n", l.Name, money(l.Amount))
	}
}

func renderStatus(w io.Writer, status string, discrepancy decimal.Decimal) error {
	if discrepancy.IsZero() {
		_, err := fmt.Fprintf(w, "\nStatus: %s\n", status)
		return err
	}
	_, err := fmt.Fprintf(w, "\nStatus: %s (discrepancy %s)\n", status, money(discrepancy))
	return err
}
