package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var hideCmd = &cobra.Command{
	Use:   "hide",
	Short: "Stop the keyboard if it is running",
	Long: `Stop the detected keyboard program. When no keyboard is installed or
none is running, hide silently succeeds.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return ctl.Hide(context.Background())
	},
}

func init() {
	rootCmd.AddCommand(hideCmd)
}
