package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oskctl/oskctl/internal/keyboard"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report which keyboard program is installed and whether it runs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := ctl.Status(context.Background())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if st.Kind == keyboard.None {
			fmt.Fprintln(out, "No keyboard application found")
			fmt.Fprintf(out, "Install one of: %s\n", strings.Join(keyboard.InstallCandidates(), ", "))
			return keyboard.ErrNoKeyboard
		}

		state := "not running"
		if st.Running {
			state = "running"
		}
		fmt.Fprintf(out, "%s is installed and %s\n", st.Kind, state)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
