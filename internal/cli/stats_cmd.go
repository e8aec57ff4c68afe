package cli

import (
	"fmt"

	"github.com/alexanderramin/mindful/internal/cli/formatter"
	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show total sessions, minutes, streak and recent sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printDashboard(cmd, app)
		},
	}
}

func newProgressCmd(app *App) *cobra.Command {
	var frame domain.TimeFrame

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show totals and charts for a time frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			fs, err := app.Stats.Progress(cmd.Context(), frame, app.Now())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatFrameSummary(fs))
			return nil
		},
	}

	addFrameFlag(cmd.Flags(), &frame, domain.FrameWeek)

	return cmd
}
