package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/SscSPs/erp_ledger/internal/core/accounting"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/erp_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/erp_ledger/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// reportingService implements the ReportingService interface
type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	txnRepo     portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service
func NewReportingService(accountRepo portsrepo.AccountReader, txnRepo portsrepo.TransactionReader) portssvc.ReportingService {
	return &reportingService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

// snapshot reads the chart and the transactions matching filter.
func (s *reportingService) snapshot(ctx context.Context, filter portsrepo.TransactionFilter) ([]domain.Account, []domain.Transaction, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load chart of accounts for report")
		return nil, nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	txns, err := s.txnRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for report")
		return nil, nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return accounts, txns, nil
}

func asOfFilter(asOf time.Time) portsrepo.TransactionFilter {
	cutoff := accounting.CalendarDate(asOf)
	return portsrepo.TransactionFilter{AsOf: &cutoff}
}

// TrialBalance generates a trial balance report as of a specific date
func (s *reportingService) TrialBalance(ctx context.Context, asOf time.Time) (*domain.TrialBalance, error) {
	accounts, txns, err := s.snapshot(ctx, asOfFilter(asOf))
	if err != nil {
		return nil, err
	}

	tb := accounting.BuildTrialBalance(accounts, txns)
	if !tb.IsBalanced {
		s.LogWarn(ctx, "Trial balance is out of balance",
			slog.String("asOf", asOf.Format(time.DateOnly)),
			slog.String("discrepancy", tb.Discrepancy.String()))
	}
	s.LogInfo(ctx, "Trial balance report generated successfully",
		slog.String("asOf", asOf.Format(time.DateOnly)),
		slog.Int("row_count", len(tb.Rows)))
	return &tb, nil
}

// IncomeStatement generates an income statement for transactions dated within [from, to]
func (s *reportingService) IncomeStatement(ctx context.Context, from, to time.Time) (*domain.IncomeStatement, error) {
	fromDate := accounting.CalendarDate(from)
	toDate := accounting.CalendarDate(to)
	if toDate.Before(fromDate) {
		return nil, fmt.Errorf("%w: toDate is before fromDate", apperrors.ErrValidation)
	}

	accounts, txns, err := s.snapshot(ctx, portsrepo.TransactionFilter{From: &fromDate, AsOf: &toDate})
	if err != nil {
		return nil, err
	}

	stmt := accounting.BuildIncomeStatement(accounts, txns)
	s.LogInfo(ctx, "Income statement generated successfully",
		slog.String("fromDate", fromDate.Format(time.DateOnly)),
		slog.String("toDate", toDate.Format(time.DateOnly)),
		slog.String("net_profit", stmt.NetProfit.String()))
	return &stmt, nil
}

// BalanceSheet generates a balance sheet report as of a specific date
func (s *reportingService) BalanceSheet(ctx context.Context, asOf time.Time) (*domain.BalanceSheet, error) {
	accounts, txns, err := s.snapshot(ctx, asOfFilter(asOf))
	if err != nil {
		return nil, err
	}

	sheet := accounting.BuildBalanceSheet(accounts, txns)
	if !sheet.IsBalanced {
		s.LogWarn(ctx, "Balance sheet is out of balance",
			slog.String("asOf", asOf.Format(time.DateOnly)),
			slog.String("discrepancy", sheet.Discrepancy.String()))
	}
	s.LogInfo(ctx, "Balance sheet report generated successfully",
		slog.String("asOf", asOf.Format(time.DateOnly)),
		slog.String("total_assets", sheet.TotalAssets.String()))
	return &sheet, nil
}

// NetProfit returns revenue less expenses for everything dated on or before asOf
func (s *reportingService) NetProfit(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	accounts, txns, err := s.snapshot(ctx, asOfFilter(asOf))
	if err != nil {
		return decimal.Zero, err
	}
	return accounting.ComputeNetProfit(accounts, txns), nil
}

// Dashboard returns the headline figures as of a specific date
func (s *reportingService) Dashboard(ctx context.Context, asOf time.Time) (*domain.DashboardSummary, error) {
	accounts, txns, err := s.snapshot(ctx, asOfFilter(asOf))
	if err != nil {
		return nil, err
	}
	summary := accounting.BuildDashboard(accounts, txns)
	return &summary, nil
}
