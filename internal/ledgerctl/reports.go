package ledgerctl

import (
	"fmt"
	"time"

	"github.com/SscSPs/erp_ledger/internal/core/accounting"
	"github.com/SscSPs/erp_ledger/internal/core/domain"
	"github.com/SscSPs/erp_ledger/internal/dto"
	"github.com/spf13/cobra"
)

func newTrialBalanceCommand(opts *options) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "List every account balance in debit and credit columns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cutoff, err := dateFlag("as-of", asOf, today())
			if err != nil {
				return err
			}
			b, err := opts.loadBooks()
			if err != nil {
				return err
			}

			tb := accounting.BuildTrialBalance(b.accounts, accounting.FilterByDate(b.transactions, nil, &cutoff))
			resp := dto.ToTrialBalanceResponse(&tb, cutoff)
			if err := opts.emit(cmd, resp, func() error { return renderTrialBalance(cmd.OutOrStdout(), resp) }); err != nil {
				return err
			}
			return opts.checkBalanced(tb.Status)
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "report date YYYY-MM-DD (default today)")
	return cmd
}

func newIncomeStatementCommand(opts *options) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "income-statement",
		Short: "Revenue, cost of goods sold, gross profit and net profit for a period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			end, err := dateFlag("to", to, today())
			if err != nil {
				return err
			}
			start, err := dateFlag("from", from, time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, time.UTC))
			if err != nil {
				return err
			}
			if end.Before(start) {
				return fmt.Errorf("--to %s is before --from %s", end.Format(dto.DateLayout), start.Format(dto.DateLayout))
			}
			b, err := opts.loadBooks()
			if err != nil {
				return err
			}

			stmt := accounting.BuildIncomeStatement(b.accounts, accounting.FilterByDate(b.transactions, &start, &end))
			resp := dto.ToIncomeStatementResponse(&stmt, start, end)
			return opts.emit(cmd, resp, func() error { return renderIncomeStatement(cmd.OutOrStdout(), resp) })
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "first date YYYY-MM-DD (default first day of the --to month)")
	cmd.Flags().StringVar(&to, "to", "", "last date YYYY-MM-DD (default today)")
	return cmd
}

func newBalanceSheetCommand(opts *options) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "balance-sheet",
		Short: "Check assets against liabilities plus equity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cutoff, err := dateFlag("as-of", asOf, today())
			if err != nil {
				return err
			}
			b, err := opts.loadBooks()
			if err != nil {
				return err
			}

			sheet := accounting.BuildBalanceSheet(b.accounts, accounting.FilterByDate(b.transactions, nil, &cutoff))
			resp := dto.ToBalanceSheetResponse(&sheet, cutoff)
			if err := opts.emit(cmd, resp, func() error { return renderBalanceSheet(cmd.OutOrStdout(), resp) }); err != nil {
				return err
			}
			return opts.checkBalanced(sheet.Status)
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "report date YYYY-MM-DD (default today)")
	return cmd
}

func newDashboardCommand(opts *options) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Headline totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cutoff, err := dateFlag("as-of", asOf, today())
			if err != nil {
				return err
			}
			b, err := opts.loadBooks()
			if err != nil {
				return err
			}

			sum := accounting.BuildDashboard(b.accounts, accounting.FilterByDate(b.transactions, nil, &cutoff))
			resp := dto.ToDashboardResponse(&sum, cutoff)
			if err := opts.emit(cmd, resp, func() error { return renderDashboard(cmd.OutOrStdout(), resp) }); err != nil {
				return err
			}
			if !sum.IsBalanced {
				return opts.checkBalanced(domain.StatusUnbalanced)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&asOf, "as-of", "", "report date YYYY-MM-DD (default today)")
	return cmd
}

func newTAccountCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "t-account <accountID>",
		Short: "Replay one account's entries with a running balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.loadBooks()
			if err != nil {
				return err
			}

			var account *domain.Account
			for i := range b.accounts {
				if b.accounts[i].AccountID == args[0] {
					account = &b.accounts[i]
					break
				}
			}
			if account == nil {
				return fmt.Errorf("account %q is not in %s", args[0], opts.chartPath)
			}

			ta := accounting.BuildTAccount(*account, b.transactions)
			resp := dto.ToTAccountResponse(&ta)
			return opts.emit(cmd, resp, func() error { return renderTAccount(cmd.OutOrStdout(), resp) })
		},
	}
}

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the chart and journal and confirm the trial balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := opts.loadBooks()
			if err != nil {
				return err
			}

			tb := accounting.BuildTrialBalance(b.accounts, b.transactions)
			result := struct {
				Accounts     int                 `json:"accounts"`
				Transactions int                 `json:"transactions"`
				Status       domain.ReportStatus `json:"status"`
			}{len(b.accounts), len(b.transactions), tb.Status}

			if err := opts.emit(cmd, result, func() error {
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%d accounts, %d transactions: %s\n", result.Accounts, result.Transactions, result.Status)
				return err
			}); err != nil {
				return err
			}
			return opts.checkBalanced(tb.Status)
		},
	}
}

// emit writes v as JSON or runs the text renderer, depending on --format.
func (o *options) emit(cmd *cobra.Command, v any, text func() error) error {
	if o.format == formatJSON {
		return writeJSON(cmd.OutOrStdout(), v)
	}
	return text()
}
