package services

import (
	"context"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportingService defines operations for generating financial reports.
// Every report is computed from a fresh read of the ledger.
type ReportingService interface {
	// TrialBalance generates a trial balance report as of a specific date
	TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error)

	// IncomeStatement generates an income statement for transactions dated within [from, to]
	IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatement, error)

	// BalanceSheet generates a balance sheet report as of a specific date
	BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error)

	// NetProfit returns revenue less expenses for everything dated on or before asOf
	NetProfit(ctx context.Context, asOf time.Time) (decimal.Decimal, error)

	// Dashboard returns the headline figures as of a specific date
	Dashboard(ctx context.Context, asOf time.Time) (*domain.DashboardSummary, error)
}
