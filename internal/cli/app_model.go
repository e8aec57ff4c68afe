package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/mindful/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// appModel is the root bubbletea Model for the TUI.
// It owns the four tabs, a stack of form overlays and the status line.
type appModel struct {
	state   *SharedState
	tabs    []View // indexed by ViewID; kept alive so a running timer survives tab switches
	active  ViewID
	overlay []View

	status    string
	statusErr bool
	quitting  bool

	// Scrollable content area for views taller than the terminal.
	contentVP viewport.Model
}

var (
	appKeyNextTab = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab"))
	appKeyPrevTab = key.NewBinding(key.WithKeys("shift+tab"))
	appKeyQuit    = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
)

func newAppModel(app *App) appModel {
	state := newSharedState(app)

	vp := viewport.New(0, 0)
	vp.KeyMap = contentViewportKeyMap()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3

	return appModel{
		state: state,
		tabs: []View{
			newHomeView(state),
			newTimerView(state),
			newProgressView(state),
			newSettingsView(state),
		},
		active:    ViewHome,
		contentVP: vp,
	}
}

// activeView returns the top overlay, or the active tab when no overlay
// is open.
func (m *appModel) activeView() View {
	if n := len(m.overlay); n > 0 {
		return m.overlay[n-1]
	}
	return m.tabs[m.active]
}

// setActiveView stores the updated model returned by activeView().Update.
func (m *appModel) setActiveView(v View) {
	if n := len(m.overlay); n > 0 {
		m.overlay[n-1] = v
		return
	}
	m.tabs[m.active] = v
}

// loadPrefs reads the preferences record, creating the default one on
// first launch.
func loadPrefs(app *App) tea.Cmd {
	return func() tea.Msg {
		p, err := app.Preferences.Get(context.Background())
		return prefsMsg{prefs: p, err: err}
	}
}

func refreshCmd() tea.Msg { return refreshViewMsg{} }

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	cmds := []tea.Cmd{loadPrefs(m.state.App)}
	for _, v := range m.tabs {
		cmds = append(cmds, v.Init())
	}
	return tea.Batch(cmds...)
}

// Update applies msg, then turns any mutation committed meanwhile into a
// refresh of every view.
func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := m.update(msg)
	if m.state.takeChanged() {
		cmd = tea.Batch(cmd, refreshCmd)
	}
	if next, ok := model.(appModel); ok && !next.quitting {
		next.contentVP.SetContent(next.activeView().View())
		model = next
	}
	return model, cmd
}

func (m appModel) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		m.contentVP.Width = msg.Width
		m.contentVP.Height = m.state.ContentHeight()
		return m, m.broadcast(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.contentVP, cmd = m.contentVP.Update(msg)
		return m, cmd

	case switchTabMsg:
		m.overlay = nil
		m.selectTab(msg.tab)
		return m, nil

	case pushViewMsg:
		m.overlay = append(m.overlay, msg.view)
		m.contentVP.GotoTop()
		return m, msg.view.Init()

	case popViewMsg:
		m.popOverlay()
		return m, nil

	case wizardCompleteMsg:
		m.popOverlay()
		return m, msg.nextCmd

	case statusMsg:
		m.status = msg.text
		m.statusErr = msg.isErr
		return m, nil

	case prefsMsg:
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			m.statusErr = true
			return m, nil
		}
		m.state.Prefs = msg.prefs
		formatter.SetDarkMode(msg.prefs.DarkMode)
		return m, m.broadcastTabs(msg)

	case refreshViewMsg:
		return m, m.broadcastTabs(msg)
	}

	// Timer ticks, load results and form internals go everywhere; each view
	// ignores what it did not ask for.
	return m, m.broadcast(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms receive every key so text fields can take q, tab and digits.
	if len(m.overlay) > 0 {
		return m, m.updateActive(msg)
	}

	if isContentScrollKey(msg) {
		var cmd tea.Cmd
		m.contentVP, cmd = m.contentVP.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, appKeyQuit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, appKeyNextTab):
		m.selectTab((m.active + 1) % ViewID(len(m.tabs)))
		return m, nil
	case key.Matches(msg, appKeyPrevTab):
		m.selectTab((m.active + ViewID(len(m.tabs)) - 1) % ViewID(len(m.tabs)))
		return m, nil
	}
	if s := msg.String(); len(s) == 1 && s[0] >= '1' && int(s[0]-'1') < len(m.tabs) {
		m.selectTab(ViewID(s[0] - '1'))
		return m, nil
	}

	return m, m.updateActive(msg)
}

func (m *appModel) selectTab(id ViewID) {
	if int(id) < 0 || int(id) >= len(m.tabs) || id == m.active {
		return
	}
	m.active = id
	m.contentVP.GotoTop()
}

func (m *appModel) popOverlay() {
	if n := len(m.overlay); n > 0 {
		m.overlay = m.overlay[:n-1]
	}
}

func (m *appModel) updateActive(msg tea.Msg) tea.Cmd {
	updated, cmd := m.activeView().Update(msg)
	m.setActiveView(updated.(View))
	return cmd
}

// broadcastTabs delivers msg to every tab, active or not.
func (m *appModel) broadcastTabs(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for i, v := range m.tabs {
		updated, cmd := v.Update(msg)
		m.tabs[i] = updated.(View)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// broadcast delivers msg to every tab and the top overlay.
func (m *appModel) broadcast(msg tea.Msg) tea.Cmd {
	cmd := m.broadcastTabs(msg)
	if n := len(m.overlay); n > 0 {
		updated, ocmd := m.overlay[n-1].Update(msg)
		m.overlay[n-1] = updated.(View)
		cmd = tea.Batch(cmd, ocmd)
	}
	return cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	content := m.activeView().View()
	if m.state.Height > 0 {
		vp := m.contentVP
		vp.SetContent(content)
		content = vp.View()
	}
	sections = append(sections, content)
	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StyleAccent.Bold(true).Render("mindful")

	tabs := make([]string, 0, len(m.tabs))
	for i, v := range m.tabs {
		label := fmt.Sprintf("%d %s", i+1, v.Title())
		if ViewID(i) == m.active {
			tabs = append(tabs, formatter.StyleStrong.Bold(true).Underline(true).Render(label))
			continue
		}
		tabs = append(tabs, formatter.Dim(label))
	}
	header := title + "  " + strings.Join(tabs, "  ")

	if n := len(m.overlay); n > 0 {
		header += "  " + formatter.Dim("›") + " " + formatter.Dim(m.overlay[n-1].Title())
	}

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var hints []string
	if m.state.Height > 0 && m.contentVP.TotalLineCount() > m.contentVP.Height {
		hints = append(hints, scrollIndicator(m.contentVP))
	}
	for _, b := range m.activeView().ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	if len(m.overlay) > 0 {
		hints = append(hints, formatter.Dim("esc: cancel"))
	} else {
		hints = append(hints, formatter.Dim("tab: next tab"), formatter.Dim("q: quit"))
	}

	status := m.status
	if status != "" {
		if m.statusErr {
			status = formatter.StyleDanger.Render(status)
		} else {
			status = formatter.StyleStrong.Render(status)
		}
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.Active().Border)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + status + "\n" + strings.Join(hints, "  ")
}

// contentViewportKeyMap only scrolls on arrow and page keys, leaving
// letters and left/right free for the views.
func contentViewportKeyMap() viewport.KeyMap {
	return viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		Up:           key.NewBinding(key.WithKeys("up")),
		Down:         key.NewBinding(key.WithKeys("down")),
	}
}

func isContentScrollKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown, tea.KeyCtrlU, tea.KeyCtrlD:
		return true
	}
	return false
}

// scrollIndicator returns a dim scroll position string for the status bar.
func scrollIndicator(vp viewport.Model) string {
	if vp.AtTop() {
		return formatter.Dim("[TOP]")
	}
	if vp.AtBottom() {
		return formatter.Dim("[END]")
	}
	pct := int(vp.ScrollPercent() * 100)
	return formatter.Dim(fmt.Sprintf("[%d%%]", pct))
}

// runTUI starts the full-screen program and blocks until it quits.
func runTUI(app *App) error {
	m := newAppModel(app)
	defer m.state.Close()
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
