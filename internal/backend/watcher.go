package backend

import (
	"context"
	"sync"
	"time"

	"github.com/atomicstack/tmux-agent-dash/internal/logging"
	"github.com/atomicstack/tmux-agent-dash/internal/status"
	"github.com/atomicstack/tmux-agent-dash/internal/tmux"
)

// Event conveys a full registry snapshot or a poll error. A snapshot always
// replaces the previous registry wholesale; there is no incremental diffing.
type Event struct {
	Sessions []tmux.Session
	Err      error
}

// FetchFunc produces one registry snapshot. Injectable so tests can drive
// the watcher without tmux.
type FetchFunc func(ctx context.Context) ([]tmux.Session, error)

// NewSessionFetch lists sessions, captures each session's pane and
// classifies it. A capture failure degrades that single session to Unknown
// rather than aborting the cycle.
func NewSessionFetch(client *tmux.Client, classifier *status.Classifier) FetchFunc {
	return func(ctx context.Context) ([]tmux.Session, error) {
		sessions, err := client.ListSessions()
		if err != nil {
			return nil, err
		}
		for i := range sessions {
			content, err := client.CapturePane(sessions[i].Id)
			if err != nil {
				sessions[i].Status = status.Unknown
				continue
			}
			sessions[i].Status = classifier.Classify(content)
		}
		return sessions, nil
	}
}

// Watcher polls for session snapshots at a fixed interval and publishes
// events. A poll failure is reported as an event and never stops subsequent
// polls; the watcher runs until Stop.
type Watcher struct {
	fetch    FetchFunc
	interval time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts a watcher polling every interval. The first poll fires
// immediately so the UI is populated before the first tick.
func NewWatcher(fetch FetchFunc, interval time.Duration) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		fetch:    fetch,
		interval: interval,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 16),
	}

	w.wg.Add(1)
	go w.poll()

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns the channel of registry snapshots and poll errors. It is
// closed only after Stop; an unexpected close is fatal to the consumer.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current fetch
// completes; use Wait when a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller goroutine has exited and the events channel
// is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll() {
	defer w.wg.Done()

	emit := func() bool {
		sessions, err := w.fetch(w.ctx)
		if err != nil {
			logging.ForComponent(logging.CompBackend).Warn("poll failed", "error", err)
		}
		evt := Event{Sessions: sessions, Err: err}
		select {
		case <-w.ctx.Done():
			return false
		case w.events <- evt:
			return true
		}
	}

	if !emit() {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			if !emit() {
				return
			}
		}
	}
}
