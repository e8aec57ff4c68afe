package cli

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/mindful/internal/cli/formatter"
	"github.com/alexanderramin/mindful/internal/domain"
	"github.com/alexanderramin/mindful/internal/teatest"
	"github.com/alexanderramin/mindful/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDriver wraps teatest.Driver with access to appModel internals
// (tabs, overlays, the timer) that the generic driver can't see.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver builds the appModel for app, sizes the terminal and
// drains Init(), which loads preferences and dashboard data synchronously
// from in-memory SQLite.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	t.Cleanup(m.state.Close)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top overlay or the active tab.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	return m.activeView().ID()
}

// Timer returns the timer behind the Timer tab.
func (d *TestDriver) Timer() *timer.Timer {
	return d.appModel().tabs[ViewTimer].(*timerView).timer
}

// TickSeconds delivers n one-second ticks stamped with the timer's
// current generation, as tea.Tick would.
func (d *TestDriver) TickSeconds(n int) {
	d.T.Helper()
	d.SendN(n, func() tea.Msg { return timerTickMsg{gen: d.Timer().Generation()} })
}

// Status returns the status line text.
func (d *TestDriver) Status() string {
	return d.appModel().status
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting returns whether the app has signaled a quit.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}

// ── Flows ────────────────────────────────────────────────────────────────────

func TestTUI_HomeOnLaunch(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	assert.Equal(t, ViewHome, d.ActiveViewID())
	d.AssertViewContains("Day Streak", "Start New Session", "No sessions yet. Start your first one!")
	require.NotNil(t, d.State().Prefs, "preferences load at startup")
	assert.Equal(t, domain.DefaultPreferredDurationSec, d.State().Prefs.PreferredDurationSec)
}

func TestTUI_StartFromHomeOpensTimer(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('s')
	assert.Equal(t, ViewTimer, d.ActiveViewID())
	d.AssertViewContains("05:00", "Ready", "[5 min]")
}

func TestTUI_TimerCompletesAndRecords(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('2')
	d.PressLeft() // 5 min -> 1 min
	assert.Equal(t, time.Minute, d.Timer().Duration())

	skipped := d.Skipped
	d.PressSpace()
	assert.Equal(t, timer.Running, d.Timer().State())
	assert.Equal(t, skipped+1, d.Skipped, "the real one-second tick is left pending")
	d.AssertViewContains("01:00", "Meditating...")

	d.TickSeconds(30)
	d.AssertViewContains("00:30")
	assert.Equal(t, skipped+31, d.Skipped, "each applied tick schedules the next")
	assert.Equal(t, 0, countSessions(t, app))

	d.TickSeconds(30)
	assert.Equal(t, timer.Idle, d.Timer().State())
	assert.Equal(t, "Session Saved: 1 min Timed session", d.Status())
	d.AssertViewContains("Session Saved")

	all, err := app.Sessions.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 60, all[0].DurationSec)
	assert.True(t, all[0].StartedAt.Equal(testNow))

	// The committed session refreshed the dashboard behind the timer.
	d.PressKey('1')
	d.AssertViewContains("Today", "1 min Timed session")
	d.AssertViewNotContains("No sessions yet")
}

func TestTUI_PauseDropsInFlightTick(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('2')
	d.PressSpace()
	d.TickSeconds(10)

	staleGen := d.Timer().Generation()
	d.PressSpace()
	assert.Equal(t, timer.Paused, d.Timer().State())

	d.Send(timerTickMsg{gen: staleGen})
	assert.Equal(t, 290*time.Second, d.Timer().Remaining())
	d.AssertViewContains("04:50", "Paused")

	d.PressSpace()
	d.TickSeconds(1)
	assert.Equal(t, 289*time.Second, d.Timer().Remaining())
}

func TestTUI_ResetRecordsNothing(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)
	d.PressKey('2')
	d.PressSpace()
	d.TickSeconds(120)

	d.PressKey('x')
	assert.Equal(t, timer.Idle, d.Timer().State())
	assert.Equal(t, 5*time.Minute, d.Timer().Remaining())
	assert.Equal(t, 0, countSessions(t, app))
}

func TestTUI_TimerKeepsRunningAcrossTabs(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('2')
	d.PressSpace()
	d.TickSeconds(5)

	d.PressKey('3')
	d.TickSeconds(5)
	d.PressKey('2')
	assert.Equal(t, timer.Running, d.Timer().State())
	assert.Equal(t, 290*time.Second, d.Timer().Remaining())
}

func TestTUI_PresetsLockedWhileRunning(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('2')
	d.PressRight()
	assert.Equal(t, 10*time.Minute, d.Timer().Duration())

	d.PressSpace()
	d.PressRight()
	assert.Equal(t, 10*time.Minute, d.Timer().Duration())
}

func TestTUI_SettingsDurationFollowsTimer(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('4')
	d.AssertViewContains("Default Duration", "5 min", formatter.AppVersion)

	d.PressKey('+')
	assert.Equal(t, 6, d.State().Prefs.PreferredMinutes())
	d.AssertViewContains("6 min")

	p, err := app.Preferences.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 360, p.PreferredDurationSec)

	d.PressKey('2')
	assert.Equal(t, 6*time.Minute, d.Timer().Duration())
	d.AssertViewContains("06:00")
}

func TestTUI_SettingsChangeDuringRunIsPending(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('2')
	d.PressSpace()
	d.TickSeconds(3)

	d.PressKey('4')
	d.PressKey('-')
	d.PressKey('2')
	assert.Equal(t, 5*time.Minute, d.Timer().Duration())
	assert.Equal(t, 297*time.Second, d.Timer().Remaining())
	d.AssertViewContains("Next session: 4 min")
}

func TestTUI_SettingsStepperStopsAtBounds(t *testing.T) {
	app := testApp(t)
	_, err := app.Preferences.SetPreferredDuration(context.Background(), 1)
	require.NoError(t, err)
	d := NewTestDriver(t, app)

	d.PressKey('4')
	d.PressKey('-')
	assert.Equal(t, 1, d.State().Prefs.PreferredMinutes())
	assert.Empty(t, d.Status())
}

func TestTUI_SettingsDarkMode(t *testing.T) {
	d := NewTestDriver(t, testApp(t))

	d.PressKey('4')
	d.AssertViewContains("○ off")
	d.PressKey('d')
	assert.True(t, d.State().Prefs.DarkMode)
	assert.True(t, formatter.DarkMode())
	d.AssertViewContains("● on")
}

func TestTUI_SettingsResetAllData(t *testing.T) {
	app := testApp(t)
	seedSessions(t, app, 5, testNow, testNow.AddDate(0, 0, -1))
	d := NewTestDriver(t, app)
	d.AssertViewContains("Yesterday")

	d.PressKey('4')
	d.PressKey('R')
	d.AssertViewContains("Reset All Data?")
	d.PressKey('n')
	assert.Equal(t, 2, countSessions(t, app))
	d.AssertViewNotContains("Reset All Data?")

	d.PressKey('R')
	d.PressKey('y')
	assert.Equal(t, 0, countSessions(t, app))
	assert.Equal(t, "All data reset. Deleted 2 sessions.", d.Status())

	d.PressKey('1')
	d.AssertViewContains("No sessions yet. Start your first one!")
}

func TestTUI_ProgressFrames(t *testing.T) {
	app := testApp(t)
	seedSessions(t, app, 10, testNow.AddDate(0, 0, -1), testNow.AddDate(0, -2, 0))
	d := NewTestDriver(t, app)

	d.PressKey('3')
	d.AssertViewContains("[Week]", "SESSION DURATION", "DAILY FREQUENCY")

	d.PressRight()
	d.AssertViewContains("[Month]")
	d.PressRight()
	d.AssertViewContains("[Year]")
	d.PressLeft()
	d.PressLeft()
	d.PressLeft()
	d.AssertViewContains("[All Time]")
}

func TestTUI_LogSessionFormCancel(t *testing.T) {
	app := testApp(t)
	d := NewTestDriver(t, app)

	d.PressKey('l')
	assert.Equal(t, ViewForm, d.ActiveViewID())
	d.AssertViewContains("Log Session")

	d.PressKey('q') // typed into the form, not a quit
	assert.False(t, d.IsQuitting())

	d.PressEsc()
	assert.Equal(t, ViewHome, d.ActiveViewID())
	assert.Equal(t, "Cancelled.", d.Status())
	assert.Equal(t, 0, countSessions(t, app))
}

func TestApplyLogSession(t *testing.T) {
	app := testApp(t)

	msg := applyLogSession(app, &logSessionFields{minutes: " 7 ", typ: "guided", note: "evening"})
	assert.Equal(t, statusMsg{text: `Logged 7 min Guided session · "evening"`}, msg)

	all, err := app.Sessions.List(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "evening", all[0].Note)
	assert.True(t, all[0].StartedAt.Equal(testNow.Add(-7*time.Minute)))

	msg = applyLogSession(app, &logSessionFields{minutes: "seven", typ: "guided"})
	assert.True(t, msg.(statusMsg).isErr)
	assert.Equal(t, 1, countSessions(t, app))
}

func TestTUI_Quit(t *testing.T) {
	d := NewTestDriver(t, testApp(t))
	d.PressKey('q')
	assert.True(t, d.IsQuitting())
}
