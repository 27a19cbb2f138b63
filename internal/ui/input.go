package ui

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes a key press through the modal state machine.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	// A previously displayed message is cleared before the key's own effect.
	if m.mode == ModeNormal && m.message != "" {
		m.message = ""
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalKey(msg)
	case ModeCreating:
		return m.handleCreatingKey(msg)
	case ModeConfirming:
		return m.handleConfirmingKey(msg)
	}
	return nil
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return tea.Quit
	case "j", "down":
		m.nextSession()
	case "k", "up":
		m.previousSession()
	case "M":
		m.showMeta = !m.showMeta
	case "enter":
		if s := m.selectedSession(); s != nil {
			m.enqueue(cmdAttach, s.Id)
		}
	case "n":
		m.mode = ModeCreating
		m.input.Reset()
		m.input.Focus()
	case "d":
		if m.selectedSession() != nil {
			m.mode = ModeConfirming
		}
	case "y":
		m.enqueue(cmdCopySkeleton, "")
	}
	return nil
}

func (m *Model) handleCreatingKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		name := m.input.Value()
		if name != "" {
			m.enqueue(cmdCreate, name)
		}
		m.input.Reset()
		m.input.Blur()
		m.mode = ModeNormal
		return nil
	case "esc":
		m.input.Reset()
		m.input.Blur()
		m.mode = ModeNormal
		return nil
	}

	// Session names are restricted to alphanumerics, '-' and '_'. Rejected
	// runes are dropped silently; the rest of the press still applies.
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		filtered := msg.Runes[:0:0]
		for _, r := range msg.Runes {
			if isSessionNameRune(r) {
				filtered = append(filtered, r)
			}
		}
		if len(filtered) == 0 {
			return nil
		}
		msg.Type = tea.KeyRunes
		msg.Runes = filtered
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleConfirmingKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		if s := m.selectedSession(); s != nil {
			m.enqueue(cmdDelete, s.Id)
		}
		m.mode = ModeNormal
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return nil
}

func isSessionNameRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_'
}

// nextSession moves the cursor down with wraparound; no-op when empty.
func (m *Model) nextSession() {
	if len(m.sessions) == 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.sessions)
}

// previousSession moves the cursor up with wraparound; no-op when empty.
func (m *Model) previousSession() {
	if len(m.sessions) == 0 {
		return
	}
	m.cursor = (m.cursor - 1 + len(m.sessions)) % len(m.sessions)
}
