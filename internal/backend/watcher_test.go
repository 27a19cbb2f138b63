package backend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/atomicstack/tmux-agent-dash/internal/status"
	"github.com/atomicstack/tmux-agent-dash/internal/tmux"
)

func TestWatcherEmitsSnapshots(t *testing.T) {
	fetch := func(ctx context.Context) ([]tmux.Session, error) {
		return []tmux.Session{{Id: "$0", Name: "worker1", Status: status.Busy}}, nil
	}
	w := NewWatcher(fetch, 10*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	select {
	case evt := <-w.Events():
		if evt.Err != nil {
			t.Fatalf("unexpected error: %v", evt.Err)
		}
		if len(evt.Sessions) != 1 || evt.Sessions[0].Name != "worker1" {
			t.Fatalf("unexpected snapshot: %#v", evt.Sessions)
		}
	case <-time.After(time.Second):
		t.Fatalf("no event within deadline")
	}
}

// A poll failure is reported once and never stops the loop: the next cycle
// runs and can succeed.
func TestWatcherContinuesAfterError(t *testing.T) {
	calls := 0
	fetch := func(ctx context.Context) ([]tmux.Session, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("tmux unavailable")
		}
		return []tmux.Session{{Id: "$0", Name: "recovered"}}, nil
	}
	w := NewWatcher(fetch, 5*time.Millisecond)
	defer func() {
		w.Stop()
		w.Wait()
	}()

	first := <-w.Events()
	if first.Err == nil {
		t.Fatalf("expected first event to carry the poll error")
	}

	select {
	case second := <-w.Events():
		if second.Err != nil {
			t.Fatalf("expected recovery, got %v", second.Err)
		}
		if len(second.Sessions) != 1 || second.Sessions[0].Name != "recovered" {
			t.Fatalf("unexpected snapshot: %#v", second.Sessions)
		}
	case <-time.After(time.Second):
		t.Fatalf("watcher stopped after error")
	}
}

func TestWatcherStopClosesEvents(t *testing.T) {
	fetch := func(ctx context.Context) ([]tmux.Session, error) {
		return nil, nil
	}
	w := NewWatcher(fetch, 5*time.Millisecond)
	w.Stop()
	w.Wait()

	deadline := time.After(time.Second)
	for {
		select {
		case _, ok := <-w.Events():
			if !ok {
				return
			}
		case <-deadline:
			t.Fatalf("events channel never closed")
		}
	}
}

// NewSessionFetch degrades a session with a failing capture to Unknown
// instead of aborting the whole cycle. Exercised through a client whose
// runner fails capture-pane for one target.
func TestSessionFetchDegradesCaptureFailures(t *testing.T) {
	client := tmux.NewTestClient(t, map[string]tmux.TestResponse{
		"list-sessions":   {Stdout: "$0|ok|1700000000|0\n$1|broken|1700000001|0\n"},
		"capture-pane $0": {Stdout: "Thinking...\n"},
		"capture-pane $1": {Stderr: "pane gone", Err: errors.New("exit status 1")},
	})
	fetch := NewSessionFetch(client, status.NewClassifier())
	sessions, err := fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	if sessions[0].Status != status.Busy {
		t.Fatalf("expected Busy for captured session, got %v", sessions[0].Status)
	}
	if sessions[1].Status != status.Unknown {
		t.Fatalf("expected Unknown for failed capture, got %v", sessions[1].Status)
	}
}
