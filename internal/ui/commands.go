package ui

import (
	"fmt"

	"github.com/atomicstack/tmux-agent-dash/internal/clipboard"
	"github.com/atomicstack/tmux-agent-dash/internal/logging"
	"github.com/atomicstack/tmux-agent-dash/internal/logging/events"
	"github.com/atomicstack/tmux-agent-dash/internal/skeleton"
	tea "github.com/charmbracelet/bubbletea"
)

// drainPending converts the queued commands into Bubble Tea commands and
// clears the queue. tea.Sequence preserves FIFO execution order, so an
// attach queued before a delete runs first.
func (m *Model) drainPending() tea.Cmd {
	if len(m.pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(m.pending))
	for _, pc := range m.pending {
		cmds = append(cmds, m.execute(pc))
	}
	m.pending = m.pending[:0]
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

func (m *Model) execute(pc pendingCommand) tea.Cmd {
	switch pc.kind {
	case cmdAttach:
		return m.attachCmd(pc.target)
	case cmdCreate:
		return m.createCmd(pc.target)
	case cmdDelete:
		return m.deleteCmd(pc.target)
	case cmdCopySkeleton:
		return m.copySkeletonCmd()
	default:
		return nil
	}
}

// attachCmd hands the terminal to tmux for the duration of the attach.
// tea.ExecProcess releases the terminal, runs the process with inherited
// standard streams and re-acquires the terminal when it exits. Background
// producers keep queueing events meanwhile; nothing is lost, their effects
// are deferred until control returns.
func (m *Model) attachCmd(id string) tea.Cmd {
	events.Session.Attach(id)
	return tea.ExecProcess(m.gateway.AttachCommand(id), func(err error) tea.Msg {
		return attachFinishedMsg{err: err}
	})
}

func (m *Model) createCmd(name string) tea.Cmd {
	return func() tea.Msg {
		events.Session.Create(name)
		if err := m.gateway.NewSession(name); err != nil {
			events.Command.Result(cmdCreate.String(), "error")
			return commandResultMsg{text: fmt.Sprintf("Failed to create: %v", err)}
		}
		events.Command.Result(cmdCreate.String(), "ok")
		m.logSuccess(cmdCreate, name)
		return commandResultMsg{text: fmt.Sprintf("Session %q created", name)}
	}
}

func (m *Model) deleteCmd(id string) tea.Cmd {
	return func() tea.Msg {
		events.Session.Kill(id)
		if err := m.gateway.KillSession(id); err != nil {
			events.Command.Result(cmdDelete.String(), "error")
			return commandResultMsg{text: fmt.Sprintf("Failed to delete: %v", err)}
		}
		events.Command.Result(cmdDelete.String(), "ok")
		m.logSuccess(cmdDelete, id)
		return commandResultMsg{text: "Session deleted"}
	}
}

func (m *Model) copySkeletonCmd() tea.Cmd {
	return func() tea.Msg {
		tree, err := skeleton.Generate(".")
		if err != nil {
			events.Command.Result(cmdCopySkeleton.String(), "error")
			return commandResultMsg{text: fmt.Sprintf("Skeleton error: %v", err)}
		}
		if _, err := clipboard.Copy(tree); err != nil {
			events.Command.Result(cmdCopySkeleton.String(), "error")
			return commandResultMsg{text: fmt.Sprintf("Clipboard error: %v", err)}
		}
		events.Command.Result(cmdCopySkeleton.String(), "ok")
		m.logSuccess(cmdCopySkeleton, "")
		return commandResultMsg{text: "Skeleton copied to clipboard!"}
	}
}

// logSuccess records successful commands in the log file when -verbose is
// set. Failures are always surfaced in the footer, so only successes are
// gated.
func (m *Model) logSuccess(kind commandKind, target string) {
	if !m.verbose {
		return
	}
	logging.ForComponent(logging.CompUI).Info("command succeeded",
		"kind", kind.String(), "target", target)
}
