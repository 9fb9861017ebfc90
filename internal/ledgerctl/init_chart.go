package ledgerctl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/SscSPs/erp_ledger/internal/ledgerfile"
	"github.com/spf13/cobra"
)

func newInitChartCommand(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init-chart",
		Short: "Write the starter chart of accounts to --chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				if _, err := os.Stat(opts.chartPath); err == nil {
					return fmt.Errorf("%s already exists, pass --force to overwrite", opts.chartPath)
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("checking %s: %w", opts.chartPath, err)
				}
			}

			chart := ledgerfile.DefaultChart()
			if err := ledgerfile.SaveChart(opts.chartPath, chart); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d accounts to %s\n", len(chart), opts.chartPath)
			return err
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing chart")
	return cmd
}
