package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/tmux-agent-dash/internal/backend"
	"github.com/atomicstack/tmux-agent-dash/internal/logging"
	"github.com/atomicstack/tmux-agent-dash/internal/logging/events"
	"github.com/atomicstack/tmux-agent-dash/internal/status"
	"github.com/atomicstack/tmux-agent-dash/internal/tmux"
	"github.com/atomicstack/tmux-agent-dash/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	SocketPath   string
	TmuxBinary   string
	StateDir     string
	PollInterval time.Duration
	Verbose      bool
}

// Run bootstraps and executes the Bubble Tea program. The returned error is
// non-nil when the dashboard terminated abnormally, most notably when the
// session poller's event stream closed while the loop was still running.
func Run(cfg Config) error {
	socketPath, err := tmux.ResolveSocketPath(cfg.SocketPath)
	if err != nil {
		return fmt.Errorf("resolve socket path: %w", err)
	}

	client := tmux.NewClient(cfg.TmuxBinary, socketPath, cfg.StateDir)
	fetch := backend.NewSessionFetch(client, status.NewClassifier())

	interval := cfg.PollInterval
	if interval <= 0 {
		interval = time.Second
	}
	watcher := backend.NewWatcher(fetch, interval)
	defer watcher.Stop()

	logging.ForComponent(logging.CompApp).Info("dashboard starting",
		"socket", socketPath, "pollInterval", interval.String())

	model := ui.NewModel(client, watcher, cfg.Verbose)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	}

	if err := model.Err(); err != nil {
		return err
	}
	events.App.Quit()
	return nil
}
