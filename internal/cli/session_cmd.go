package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/mindful/internal/cli/formatter"
	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Log and list meditation sessions",
	}

	cmd.AddCommand(
		newSessionLogCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionLogCmd(app *App) *cobra.Command {
	var minutes int
	var note, at string
	sessionType := domain.SessionTimed

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record a session you did away from the timer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if minutes <= 0 {
				return fmt.Errorf("--minutes must be positive")
			}
			started := app.Now().Add(-time.Duration(minutes) * time.Minute)
			if at != "" {
				t, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("parsing --at (want RFC 3339, e.g. 2025-03-20T07:30:00Z): %w", err)
				}
				started = t
			}

			s := &domain.MeditationSession{
				StartedAt:   started,
				DurationSec: minutes * 60,
				Type:        sessionType,
				Note:        note,
			}
			if err := app.Sessions.Record(cmd.Context(), s); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%s)\n", formatter.SessionLine(s), formatter.HumanDate(s.StartedAt, app.Now()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Session duration in minutes")
	cmd.Flags().Var(&sessionTypeValue{typ: &sessionType}, "type", "Session type: timed or guided")
	cmd.Flags().StringVar(&note, "note", "", "Session note")
	cmd.Flags().StringVar(&at, "at", "", "Start time (RFC 3339); defaults to minutes ago")
	_ = cmd.MarkFlagRequired("minutes")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var frame domain.TimeFrame

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sessions in a time frame",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.Now()
			sessions, err := app.Sessions.ListInFrame(cmd.Context(), frame, now)
			if err != nil {
				return err
			}
			out := formatter.FormatSessionList(sessions, now)
			if len(sessions) > 0 {
				out = formatter.RenderBox("Sessions · "+frame.Label(), out)
				out += "\n"
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	addFrameFlag(cmd.Flags(), &frame, domain.FrameAll)

	return cmd
}
