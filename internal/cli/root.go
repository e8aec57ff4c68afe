package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/alexanderramin/mindful/internal/cli/formatter"
	"github.com/alexanderramin/mindful/internal/config"
	"github.com/alexanderramin/mindful/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Sessions    service.SessionService
	Preferences service.PreferencesService
	Stats       service.StatsService
	Notifier    *service.ChangeNotifier

	Config     *config.Config
	ConfigPath string

	// Location is the zone calendar days are counted in. Nil means time.Local.
	Location *time.Location
	// Clock replaces time.Now in tests.
	Clock func() time.Time

	// IsInteractive reports whether stdin is a terminal; the bare command
	// opens the TUI only then.
	IsInteractive func() bool
	// RunTUI starts the full-screen UI. Defaults to a bubbletea program.
	RunTUI func(app *App) error
	// Confirm asks a yes/no question on the terminal. Defaults to a huh form.
	Confirm func(title string) (bool, error)
	// TickInterval is the wall time `sit` waits per timer second. Zero
	// means one second; tests shorten it.
	TickInterval time.Duration
}

// Now returns the current time in the configured location.
func (a *App) Now() time.Time {
	now := time.Now
	if a.Clock != nil {
		now = a.Clock
	}
	loc := a.Location
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "mindful" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mindful",
		Short:         "Meditation timer and practice tracker",
		Long:          "Run without arguments in a terminal to open the interactive timer and dashboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			applyTheme(cmd.Context(), app, cmd.ErrOrStderr())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.interactive() {
				run := app.RunTUI
				if run == nil {
					run = runTUI
				}
				return run(app)
			}
			return printDashboard(cmd, app)
		},
	}

	root.AddCommand(
		newSitCmd(app),
		newSessionCmd(app),
		newStatsCmd(app),
		newProgressCmd(app),
		newSettingsCmd(app),
		newResetCmd(app),
		newConfigCmd(app),
	)

	return root
}

// applyTheme switches the palette to the stored dark-mode preference. A
// failed read is reported on w and keeps the current palette.
func applyTheme(ctx context.Context, app *App, w io.Writer) {
	if app.Preferences == nil {
		return
	}
	if ctx == nil {
		ctx = context.Background()
	}
	p, err := app.Preferences.Get(ctx)
	if err != nil {
		fmt.Fprintf(w, "Warning: could not load preferences: %v\n", err)
		return
	}
	formatter.SetDarkMode(p.DarkMode)
}

func printDashboard(cmd *cobra.Command, app *App) error {
	summary, err := app.Stats.Dashboard(cmd.Context(), app.Now())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDashboard(summary, app.Now()))
	return nil
}
