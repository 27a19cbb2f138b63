package ui

import "github.com/atomicstack/tmux-agent-dash/internal/backend"

// watcherEventMsg carries one poller event (registry snapshot or poll
// error) into the update loop.
type watcherEventMsg struct {
	event backend.Event
}

// watcherClosedMsg signals that the event channel closed. With the poller
// gone the dashboard can no longer observe tmux; this is the only fatal
// condition.
type watcherClosedMsg struct{}

// commandResultMsg is the user-visible outcome of an executed command,
// success or failure. It is never fatal.
type commandResultMsg struct {
	text string
}

// attachFinishedMsg is delivered when the foreground attach returns and the
// dashboard has re-acquired the terminal.
type attachFinishedMsg struct {
	err error
}

// commandKind tags a queued side-effecting command.
type commandKind int

const (
	cmdAttach commandKind = iota
	cmdCreate
	cmdDelete
	cmdCopySkeleton
)

func (k commandKind) String() string {
	switch k {
	case cmdAttach:
		return "attach"
	case cmdCreate:
		return "create"
	case cmdDelete:
		return "delete"
	case cmdCopySkeleton:
		return "copy-skeleton"
	default:
		return "unknown"
	}
}

// pendingCommand is queued by the reducer and drained FIFO by the executor
// once per update.
type pendingCommand struct {
	kind   commandKind
	target string // session id for attach/delete, name for create
}
