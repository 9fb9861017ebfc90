package accounting

import (
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BuildTrialBalance lists every account with a non-zero balance in the column matching its
// balance side. Debit and credit totals must agree for valid double-entry data; when they
// differ by a cent or more the report is marked UNBALANCED and carries the discrepancy.
func BuildTrialBalance(accounts []domain.Account, transactions []domain.Transaction) domain.TrialBalance {
	rows := make([]domain.TrialBalanceRow, 0, len(accounts))
	totalDebits := decimal.Zero
	totalCredits := decimal.Zero

	for _, acc := range accounts {
		bal := ComputeBalance(acc, transactions)
		if !bal.BalanceAmount.IsPositive() {
			continue
		}

		row := domain.TrialBalanceRow{
			AccountID:   acc.AccountID,
			AccountName: acc.Name,
			AccountType: acc.AccountType,
			Debit:       decimal.Zero,
			Credit:      decimal.Zero,
		}
		if bal.BalanceType == domain.Debit {
			row.Debit = bal.BalanceAmount
			totalDebits = totalDebits.Add(bal.BalanceAmount)
		} else {
			row.Credit = bal.BalanceAmount
			totalCredits = totalCredits.Add(bal.BalanceAmount)
		}
		rows = append(rows, row)
	}

	balanced, discrepancy := isBalanced(totalDebits, totalCredits)
	return domain.TrialBalance{
		Rows:         rows,
		TotalDebits:  totalDebits,
		TotalCredits: totalCredits,
		Discrepancy:  discrepancy,
		IsBalanced:   balanced,
		Status:       statusOf(balanced),
	}
}

// BuildIncomeStatement derives revenue, cost of goods sold, gross profit, operating expenses and
// net profit. Cost of goods sold is every Expense account whose effective role is COGS; a chart
// without one simply reports zero COGS.
func BuildIncomeStatement(accounts []domain.Account, transactions []domain.Transaction) domain.IncomeStatement {
	stmt := domain.IncomeStatement{
		RevenueLines: []domain.AccountAmount{},
		ExpenseLines: []domain.AccountAmount{},
		Revenue:      decimal.Zero,
		COGS:         decimal.Zero,
	}
	totalExpenses := decimal.Zero

	for _, acc := range accounts {
		switch acc.AccountType {
		case domain.Revenue:
			amount := creditPositive(ComputeBalance(acc, transactions))
			stmt.Revenue = stmt.Revenue.Add(amount)
			stmt.RevenueLines = append(stmt.RevenueLines, lineFor(acc, amount))
		case domain.Expense:
			amount := debitPositive(ComputeBalance(acc, transactions))
			totalExpenses = totalExpenses.Add(amount)
			if acc.EffectiveRole() == domain.RoleCOGS {
				stmt.COGS = stmt.COGS.Add(amount)
			}
			stmt.ExpenseLines = append(stmt.ExpenseLines, lineFor(acc, amount))
		}
	}

	stmt.GrossProfit = stmt.Revenue.Sub(stmt.COGS)
	stmt.OperatingExpenses = totalExpenses.Sub(stmt.COGS)
	stmt.NetProfit = stmt.GrossProfit.Sub(stmt.OperatingExpenses)
	return stmt
}

// BuildBalanceSheet checks Assets = Liabilities + Equity, where equity is capital plus net
// profit less drawings. CAPITAL accounts are read credit-positive and DRAWINGS accounts
// debit-positive. Other equity accounts appear as lines but do not enter TotalEquity.
func BuildBalanceSheet(accounts []domain.Account, transactions []domain.Transaction) domain.BalanceSheet {
	sheet := domain.BalanceSheet{
		Assets:           []domain.AccountAmount{},
		Liabilities:      []domain.AccountAmount{},
		Equity:           []domain.AccountAmount{},
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		Capital:          decimal.Zero,
		Drawings:         decimal.Zero,
	}

	for _, acc := range accounts {
		switch acc.AccountType {
		case domain.Asset:
			amount := debitPositive(ComputeBalance(acc, transactions))
			sheet.TotalAssets = sheet.TotalAssets.Add(amount)
			sheet.Assets = append(sheet.Assets, lineFor(acc, amount))
		case domain.Liability:
			amount := creditPositive(ComputeBalance(acc, transactions))
			sheet.TotalLiabilities = sheet.TotalLiabilities.Add(amount)
			sheet.Liabilities = append(sheet.Liabilities, lineFor(acc, amount))
		case domain.Equity:
			bal := ComputeBalance(acc, transactions)
			switch acc.EffectiveRole() {
			case domain.RoleDrawings:
				amount := debitPositive(bal)
				sheet.Drawings = sheet.Drawings.Add(amount)
				sheet.Equity = append(sheet.Equity, lineFor(acc, amount.Neg()))
			case domain.RoleCapital:
				amount := creditPositive(bal)
				sheet.Capital = sheet.Capital.Add(amount)
				sheet.Equity = append(sheet.Equity, lineFor(acc, amount))
			default:
				// Listed for display only; not part of TotalEquity.
				sheet.Equity = append(sheet.Equity, lineFor(acc, creditPositive(bal)))
			}
		}
	}

	sheet.NetProfit = ComputeNetProfit(accounts, transactions)
	sheet.TotalEquity = sheet.Capital.Add(sheet.NetProfit).Sub(sheet.Drawings)

	balanced, discrepancy := isBalanced(sheet.TotalAssets, sheet.TotalLiabilities.Add(sheet.TotalEquity))
	sheet.Discrepancy = discrepancy
	sheet.IsBalanced = balanced
	sheet.Status = statusOf(balanced)
	return sheet
}

// BuildDashboard summarises the ledger for the home dashboard by reusing the statements above.
func BuildDashboard(accounts []domain.Account, transactions []domain.Transaction) domain.DashboardSummary {
	stmt := BuildIncomeStatement(accounts, transactions)
	sheet := BuildBalanceSheet(accounts, transactions)
	tb := BuildTrialBalance(accounts, transactions)

	return domain.DashboardSummary{
		TotalAssets:      sheet.TotalAssets,
		TotalLiabilities: sheet.TotalLiabilities,
		TotalEquity:      sheet.TotalEquity,
		TotalRevenue:     stmt.Revenue,
		TotalExpenses:    stmt.COGS.Add(stmt.OperatingExpenses),
		NetProfit:        stmt.NetProfit,
		AccountCount:     len(accounts),
		TransactionCount: len(transactions),
		IsBalanced:       tb.IsBalanced && sheet.IsBalanced,
	}
}

func lineFor(acc domain.Account, amount decimal.Decimal) domain.AccountAmount {
	return domain.AccountAmount{
		AccountID: acc.AccountID,
		Name:      acc.Name,
		Role:      acc.EffectiveRole(),
		NetAmount: amount,
	}
}
