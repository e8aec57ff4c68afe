package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/mindful/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSettingsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change preferences",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Preferences.Get(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatPreferences(p))
			return nil
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "duration MINUTES",
			Short: "Set the default session length (1-60 minutes)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				minutes, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("minutes must be a whole number: %q", args[0])
				}
				p, err := app.Preferences.SetPreferredDuration(cmd.Context(), minutes)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Default duration set to %d min\n", p.PreferredMinutes())
				return nil
			},
		},
		&cobra.Command{
			Use:       "dark-mode on|off",
			Short:     "Switch the dark palette on or off",
			Args:      cobra.ExactArgs(1),
			ValidArgs: []string{"on", "off"},
			RunE: func(cmd *cobra.Command, args []string) error {
				on, err := parseOnOff(args[0])
				if err != nil {
					return err
				}
				p, err := app.Preferences.SetDarkMode(cmd.Context(), on)
				if err != nil {
					return err
				}
				formatter.SetDarkMode(p.DarkMode)
				state := "off"
				if p.DarkMode {
					state = "on"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Dark mode %s\n", state)
				return nil
			},
		},
	)

	return cmd
}

func parseOnOff(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("want on or off, got %q", s)
}
