package events

import "github.com/atomicstack/tmux-agent-dash/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Queue(kind string) {
	logging.Trace("command.queue", map[string]interface{}{"kind": kind})
}

func (CommandTracer) Result(kind, outcome string) {
	logging.Trace("command.result", map[string]interface{}{"kind": kind, "outcome": outcome})
}
