// Package teatest runs a bubbletea model without a tea.Program: every
// message goes straight through Update and the returned Cmds are executed
// inline until they stop producing messages.
//
// A Cmd that does not return within cmdTimeout is dropped and counted in
// Driver.Skipped. That is how tea.Tick behaves here; tests advance time by
// sending the tick message themselves.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

// MaxDrainDepth bounds how many Update rounds one message may trigger.
const MaxDrainDepth = 100

const cmdTimeout = 10 * time.Millisecond

// Driver feeds messages to Model and records what the runtime would
// otherwise have handled.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set once a tea.QuitMsg comes out of a Cmd.
	Quitting bool

	// Skipped counts Cmds dropped for exceeding cmdTimeout.
	Skipped int
}

// Option configures a Driver in New.
type Option func(*Driver)

// WithSize delivers a WindowSizeMsg before anything else.
func WithSize(w, h int) Option {
	return func(d *Driver) {
		d.Model, _ = d.Model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}
}

// New wraps model. Call DrainInit to run its Init command.
func New(t *testing.T, model tea.Model, opts ...Option) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DrainInit runs Init and everything it leads to.
func (d *Driver) DrainInit() {
	d.T.Helper()
	d.run(d.Model.Init(), 0)
}

// Send delivers msg and drains the resulting Cmds. It is a no-op after
// the model quit.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	var cmd tea.Cmd
	d.Model, cmd = d.Model.Update(msg)
	d.run(cmd, 0)
}

// SendN sends n messages built by next, calling it before every send.
func (d *Driver) SendN(n int, next func() tea.Msg) {
	d.T.Helper()
	for i := 0; i < n && !d.Quitting; i++ {
		d.Send(next())
	}
}

// PressKey types a single rune.
func (d *Driver) PressKey(r rune) {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func (d *Driver) PressSpace() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
}

func (d *Driver) PressEsc() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEsc})
}

func (d *Driver) PressLeft() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyLeft})
}

func (d *Driver) PressRight() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyRight})
}

// View renders the model.
func (d *Driver) View() string {
	return d.Model.View()
}

// AssertViewContains checks the rendered view for every string in want.
func (d *Driver) AssertViewContains(want ...string) bool {
	d.T.Helper()
	view := d.View()
	ok := true
	for _, w := range want {
		ok = assert.Contains(d.T, view, w) && ok
	}
	return ok
}

// AssertViewNotContains checks that none of unwanted is rendered.
func (d *Driver) AssertViewNotContains(unwanted ...string) bool {
	d.T.Helper()
	view := d.View()
	ok := true
	for _, u := range unwanted {
		ok = assert.NotContains(d.T, view, u) && ok
	}
	return ok
}

func (d *Driver) run(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil {
		return
	}
	if depth >= MaxDrainDepth {
		d.T.Logf("teatest: stopped draining at depth %d", depth)
		return
	}

	msg, ok := await(cmd)
	if !ok {
		d.Skipped++
		return
	}

	switch msg := msg.(type) {
	case nil:
		return
	case tea.BatchMsg:
		for _, sub := range msg {
			d.run(sub, depth+1)
		}
		return
	case tea.QuitMsg:
		d.Quitting = true
		d.Model, _ = d.Model.Update(msg)
		return
	}
	if isBlink(msg) {
		return
	}

	var next tea.Cmd
	d.Model, next = d.Model.Update(msg)
	d.run(next, depth+1)
}

// await runs cmd and gives up after cmdTimeout.
func await(cmd tea.Cmd) (tea.Msg, bool) {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg, true
	case <-time.After(cmdTimeout):
		return nil, false
	}
}

// isBlink matches the unexported cursor blink messages of huh's text
// inputs, which would otherwise schedule another blink.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(strings.ToLower(fmt.Sprintf("%T", msg)), "blink")
}
