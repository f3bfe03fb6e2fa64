package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Print t if the keyboard is running, f otherwise",
	Long: `Print a single machine-readable flag: t when a keyboard program is
detected and running, f otherwise. check always exits 0 so a status poller
can tell "not running" apart from a broken invocation.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if ctl.Check(context.Background()) {
			fmt.Fprintln(cmd.OutOrStdout(), "t")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "f")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
