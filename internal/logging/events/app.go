package events

import "github.com/atomicstack/tmux-agent-dash/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Quit() {
	logging.Trace("app.quit", nil)
}

func (AppTracer) Fatal(err error) {
	logging.Trace("app.fatal", map[string]interface{}{"error": err.Error()})
}
