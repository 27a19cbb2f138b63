package ui

import (
	"errors"

	"github.com/atomicstack/tmux-agent-dash/internal/backend"
	"github.com/atomicstack/tmux-agent-dash/internal/logging/events"
	"github.com/atomicstack/tmux-agent-dash/internal/tmux"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// InputMode is the modal focus of the dashboard. Exactly one mode is active
// at a time; it governs which keystrokes are meaningful.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCreating
	ModeConfirming
)

// ErrEventStreamClosed is returned from Run when all event producers are
// gone. It is the only condition that terminates the loop with a failure.
var ErrEventStreamClosed = errors.New("event stream closed unexpectedly")

// Model owns the session registry and the modal input state machine. It is
// the single writer for all of its fields: producers only send messages.
type Model struct {
	gateway *tmux.Client
	watcher *backend.Watcher
	verbose bool

	sessions []tmux.Session
	cursor   int
	mode     InputMode
	input    textinput.Model
	message  string
	showMeta bool

	pending []pendingCommand

	width  int
	height int

	quitting bool
	fatal    error
}

// NewModel initialises the dashboard state. The watcher may be nil in tests;
// the model then never receives registry snapshots.
func NewModel(gateway *tmux.Client, watcher *backend.Watcher, verbose bool) *Model {
	input := textinput.New()
	input.Placeholder = "session name"
	input.CharLimit = 64
	input.Prompt = "▶ "
	return &Model{
		gateway: gateway,
		watcher: watcher,
		verbose: verbose,
		mode:    ModeNormal,
		input:   input,
	}
}

// Err reports the fatal error that ended the loop, if any.
func (m *Model) Err() error {
	return m.fatal
}

// selectedSession returns the session under the cursor, or nil when the
// registry is empty.
func (m *Model) selectedSession() *tmux.Session {
	if m.cursor < 0 || m.cursor >= len(m.sessions) {
		return nil
	}
	return &m.sessions[m.cursor]
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return waitForWatcherEvent(m.watcher)
}

// Update applies one message atomically: registry, cursor, mode, message
// and the pending queue have no other writer. Pending commands are drained
// exactly once per update, in FIFO order.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case watcherEventMsg:
		cmd := m.applyWatcherEvent(msg.event)
		rearm := waitForWatcherEvent(m.watcher)
		if cmd != nil {
			return m, tea.Batch(cmd, rearm)
		}
		return m, rearm

	case watcherClosedMsg:
		m.fatal = ErrEventStreamClosed
		events.App.Fatal(m.fatal)
		return m, tea.Quit

	case commandResultMsg:
		m.message = msg.text
		return m, nil

	case attachFinishedMsg:
		if msg.err != nil {
			m.message = "Failed to attach: " + msg.err.Error()
		}
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		drain := m.drainPending()
		switch {
		case cmd != nil && drain != nil:
			return m, tea.Batch(cmd, drain)
		case drain != nil:
			return m, drain
		default:
			return m, cmd
		}
	}
	return m, nil
}

// replaceSessions swaps in a full registry snapshot and re-clamps the
// cursor: never past the end, index 0 once any session exists.
func (m *Model) replaceSessions(sessions []tmux.Session) {
	m.sessions = sessions
	if len(m.sessions) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(m.sessions) {
		m.cursor = len(m.sessions) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) applyWatcherEvent(evt backend.Event) tea.Cmd {
	if evt.Err != nil {
		events.Session.PollError(evt.Err)
		m.message = "tmux: " + evt.Err.Error()
		return nil
	}
	events.Session.Snapshot(len(evt.Sessions))
	m.replaceSessions(evt.Sessions)
	return nil
}

func (m *Model) enqueue(kind commandKind, target string) {
	events.Command.Queue(kind.String())
	m.pending = append(m.pending, pendingCommand{kind: kind, target: target})
}
