package cli

import tea "github.com/charmbracelet/bubbletea"

// Messages views use to ask the appModel for transitions.

// pushViewMsg opens an overlay view (a form) above the current tab.
type pushViewMsg struct {
	view View
}

// popViewMsg closes the top overlay.
type popViewMsg struct{}

// switchTabMsg makes one of the tab views active.
type switchTabMsg struct {
	tab ViewID
}

// refreshViewMsg asks every view to reload its data. The appModel sends
// it after a committed mutation was observed.
type refreshViewMsg struct{}

// statusMsg sets the one-line status under the content area.
type statusMsg struct {
	text  string
	isErr bool
}

// wizardCompleteMsg is sent when a form completes or is cancelled. The
// appModel pops the form, then runs nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

func switchTab(id ViewID) tea.Cmd {
	return func() tea.Msg { return switchTabMsg{tab: id} }
}

func setStatus(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func setError(err error) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: "Error: " + err.Error(), isErr: true} }
}
