package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Start the keyboard if it is not already running",
	Long: `Start the detected keyboard program. Idempotent: when the keyboard is
already running, show does nothing and emits no notification.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return ctl.Show(context.Background(), cfg)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
