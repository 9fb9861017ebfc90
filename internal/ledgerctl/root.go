// Package ledgerctl implements the ledgerctl command line tool, which runs the ledger reports
// over a chart of accounts in YAML and a journal in CSV without a database.
package ledgerctl

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/SscSPs/erp_ledger/internal/ledgerfile"
	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// ErrUnbalanced is returned under --strict when a report does not balance.
var ErrUnbalanced = errors.New("books are unbalanced")

type options struct {
	chartPath string
	txnPath   string
	format    string
	strict    bool
	verbose   bool
	logger    *slog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Double-entry ledger reports over flat files",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.format != formatText && opts.format != formatJSON {
				return fmt.Errorf("unknown --format %q, use text or json", opts.format)
			}
			level := slog.LevelWarn
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&opts.chartPath, "chart", "chart.yaml", "chart of accounts (YAML)")
	pf.StringVar(&opts.txnPath, "transactions", "journal.csv", "journal entries (CSV)")
	pf.StringVar(&opts.format, "format", formatText, "output format: text or json")
	pf.BoolVar(&opts.strict, "strict", false, "exit non-zero when a report is unbalanced")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	rootCmd.AddCommand(
		newTrialBalanceCommand(opts),
		newIncomeStatementCommand(opts),
		newBalanceSheetCommand(opts),
		newDashboardCommand(opts),
		newTAccountCommand(opts),
		newValidateCommand(opts),
		newInitChartCommand(opts),
	)

	return rootCmd
}

// books is one consistent load of the chart and journal.
type books struct {
	accounts     []domain.Account
	transactions []domain.Transaction
}

func (o *options) loadBooks() (*books, error) {
	accounts, err := ledgerfile.LoadChart(o.chartPath)
	if err != nil {
		return nil, err
	}
	txns, err := ledgerfile.LoadTransactions(o.txnPath)
	if err != nil {
		return nil, err
	}
	if err := ledgerfile.CheckReferences(accounts, txns); err != nil {
		return nil, err
	}
	o.logger.Debug("Loaded books",
		slog.String("chart", o.chartPath),
		slog.String("transactions", o.txnPath),
		slog.Int("account_count", len(accounts)),
		slog.Int("transaction_count", len(txns)))
	return &books{accounts: accounts, transactions: txns}, nil
}

func (o *options) checkBalanced(status domain.ReportStatus) error {
	if status == domain.StatusUnbalanced {
		o.logger.Warn("Report is unbalanced")
		if o.strict {
			return ErrUnbalanced
		}
	}
	return nil
}

// dateFlag parses an optional YYYY-MM-DD flag value.
func dateFlag(name, value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.Parse(dto.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s %q, use YYYY-MM-DD", name, value)
	}
	return d, nil
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
