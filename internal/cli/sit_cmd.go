package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alexanderramin/mindful/internal/cli/formatter"
	"github.com/alexanderramin/mindful/internal/timer"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newSitCmd(app *App) *cobra.Command {
	var minutes int

	cmd := &cobra.Command{
		Use:   "sit",
		Short: "Run a countdown in this terminal and record it when it finishes",
		Long:  "Counts down without the full-screen UI. Ctrl+C abandons the session; nothing is recorded.",
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := sitDuration(cmd, app, minutes)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runSit(ctx, cmd.OutOrStdout(), app, d)
		},
	}

	cmd.Flags().IntVarP(&minutes, "minutes", "m", 0, "Session length in minutes (default: preferred duration)")
	return cmd
}

// sitDuration resolves --minutes, falling back to the stored preference.
func sitDuration(cmd *cobra.Command, app *App, minutes int) (time.Duration, error) {
	if cmd.Flags().Changed("minutes") {
		if err := validateMinutes(fmt.Sprint(minutes)); err != nil {
			return 0, fmt.Errorf("--minutes: %w", err)
		}
		return time.Duration(minutes) * time.Minute, nil
	}
	p, err := app.Preferences.Get(cmd.Context())
	if err != nil {
		return 0, err
	}
	return p.PreferredDuration(), nil
}

// runSit drives a timer.Timer from a time.Ticker until it completes or
// ctx is cancelled.
func runSit(ctx context.Context, out io.Writer, app *App, d time.Duration) error {
	t, err := timer.New(d, timer.RecorderFunc(app.Sessions.Record), timer.WithClock(app.Now))
	if err != nil {
		return err
	}
	if err := t.Start(); err != nil {
		return err
	}

	line := newSitLine(out)
	fmt.Fprintf(out, "Sitting for %d min. Ctrl+C to abandon.\n", int(d/time.Minute))
	line.draw(t.Snapshot())

	interval := app.TickInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	abandon := func() error {
		t.Reset()
		line.finish()
		fmt.Fprintln(out, formatter.Dim("Session abandoned. Nothing was recorded."))
		return nil
	}

	// Once a tick is taken the save runs to completion; a signal that
	// lands mid-write must not roll back a finished session.
	saveCtx := context.WithoutCancel(ctx)
	for {
		select {
		case <-ctx.Done():
			return abandon()
		case <-ticker.C:
			if ctx.Err() != nil {
				return abandon()
			}
			session, err := t.Tick(saveCtx)
			if err != nil {
				line.finish()
				return fmt.Errorf("session was not saved: %w", err)
			}
			if session != nil {
				line.draw(t.Snapshot())
				line.finish()
				fmt.Fprintf(out, "Session Saved: %s\n", formatter.SessionLine(session))
				return nil
			}
			line.draw(t.Snapshot())
		}
	}
}

// sitLine redraws one progress line in place on a terminal. On anything
// else it stays silent until the end.
type sitLine struct {
	out   io.Writer
	isTTY bool
	width int
}

func newSitLine(out io.Writer) *sitLine {
	l := &sitLine{out: out, width: 80}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		l.isTTY = true
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			l.width = w
		}
	}
	return l
}

func (l *sitLine) draw(snap timer.Snapshot) {
	if !l.isTTY {
		return
	}
	clock := formatter.FormatClock(snap.Remaining)
	// clock, gap, brackets and percentage take about 14 columns
	barW := max(min(l.width-len(clock)-14, 50), 10)
	text := clock + "  " + formatter.RenderProgress(snap.Progress(), barW)
	fmt.Fprint(l.out, "\r"+text+strings.Repeat(" ", 2))
}

func (l *sitLine) finish() {
	if l.isTTY {
		fmt.Fprintln(l.out)
	}
}
