package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

const resetPrompt = "Reset All Data? This will delete every session. Preferences are kept."

func newResetCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete every recorded session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				if !app.interactive() {
					return errors.New("refusing to reset without confirmation; pass --yes")
				}
				confirm := app.Confirm
				if confirm == nil {
					confirm = confirmOnTerminal
				}
				ok, err := confirm(resetPrompt)
				if err != nil {
					return err
				}
				if !ok {
					fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
					return nil
				}
			}

			n, err := app.Sessions.ResetAll(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d %s.\n", n, plural(n, "session", "sessions"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func confirmOnTerminal(title string) (bool, error) {
	var ok bool
	if err := confirmForm(title, &ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
