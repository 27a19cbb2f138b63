package events

import "github.com/atomicstack/tmux-agent-dash/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) Snapshot(count int) {
	logging.Trace("session.snapshot", map[string]interface{}{"count": count})
}

func (SessionTracer) PollError(err error) {
	logging.Trace("session.poll.error", map[string]interface{}{"error": err.Error()})
}

func (SessionTracer) Attach(id string) {
	logging.Trace("session.attach", map[string]interface{}{"target": id})
}

func (SessionTracer) Create(name string) {
	logging.Trace("session.create", map[string]interface{}{"name": name})
}

func (SessionTracer) Kill(id string) {
	logging.Trace("session.kill", map[string]interface{}{"target": id})
}
