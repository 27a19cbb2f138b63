package ui

import (
	"github.com/atomicstack/tmux-agent-dash/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

// waitForWatcherEvent bridges the poller channel into the program's message
// queue. The command blocks on the channel and is re-armed after every
// delivery, so snapshots arrive strictly in channel order.
func waitForWatcherEvent(w *backend.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return watcherClosedMsg{}
		}
		return watcherEventMsg{event: evt}
	}
}
