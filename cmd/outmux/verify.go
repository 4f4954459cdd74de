package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/outmux/pkg/chainlog"
	"github.com/arthur-debert/outmux/pkg/errors"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <log-file>",
	Short: "Verify the token chain of a log file",
	Long: `Walk an existing chained log file and check that every record's token
links to its predecessor. Reseed boundaries, where a writer reopened the
file and continued from the fallback seed, are reported separately from
genuine breaks.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := chainlog.Verify(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d records, %d reseed boundaries, %d breaks\n",
			report.Lines, len(report.Reseeds), len(report.Breaks))
		if !report.OK() {
			return errors.Newf(errors.ErrChainBroken, "chain broken at records %v", report.Breaks)
		}
		return nil
	},
}
