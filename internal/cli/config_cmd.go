package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/alexanderramin/mindful/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective configuration",
			RunE: func(cmd *cobra.Command, args []string) error {
				if app.Config == nil {
					return errors.New("no configuration loaded")
				}
				data, err := config.Marshal(app.Config)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "# %s\n", app.ConfigPath)
				if err := configFileState(app.ConfigPath); errors.Is(err, fs.ErrNotExist) {
					fmt.Fprintln(out, "# not written yet; run 'mindful config init'")
				}
				fmt.Fprint(out, string(data))
				return nil
			},
		},
		&cobra.Command{
			Use:   "init",
			Short: "Write the effective configuration to the config file",
			RunE: func(cmd *cobra.Command, args []string) error {
				if app.Config == nil || app.ConfigPath == "" {
					return errors.New("no configuration loaded")
				}
				switch err := configFileState(app.ConfigPath); {
				case err == nil:
					return fmt.Errorf("%s already exists", app.ConfigPath)
				case !errors.Is(err, fs.ErrNotExist):
					return fmt.Errorf("%s exists but is not usable: %w", app.ConfigPath, err)
				}
				if err := config.WriteConfig(app.ConfigPath, app.Config); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", app.ConfigPath)
				return nil
			},
		},
	)

	return cmd
}

// configFileState reports whether path holds a readable config file: nil
// when it does, an fs.ErrNotExist chain when nothing is there yet.
func configFileState(path string) error {
	_, err := config.ReadConfig(path, "")
	return err
}
