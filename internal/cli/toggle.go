package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var toggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Show the keyboard if hidden, hide it if shown",
	Args:  cobra.NoArgs,
	RunE:  runToggle,
}

func init() {
	rootCmd.AddCommand(toggleCmd)
}

func runToggle(_ *cobra.Command, _ []string) error {
	return ctl.Toggle(context.Background(), cfg)
}
