package tmux

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func fakeClient(run runFunc) *Client {
	c := NewClient("tmux", "", "")
	c.run = run
	return c
}

func TestListSessionsParsesRecords(t *testing.T) {
	out := "$0|worker1|1700000000|1\n$1|worker2|1700000100|0\n"
	c := fakeClient(func(cmd *exec.Cmd) ([]byte, []byte, error) {
		return []byte(out), nil, nil
	})
	sessions, err := c.ListSessions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(sessions))
	}
	first := sessions[0]
	if first.Id != "$0" || first.Name != "worker1" || first.CreatedAt != 1700000000 || first.AttachedClients != 1 {
		t.Fatalf("unexpected first session: %#v", first)
	}
	if sessions[1].AttachedClients != 0 {
		t.Fatalf("expected detached second session, got %#v", sessions[1])
	}
}

func TestListSessionsDropsMalformedRecords(t *testing.T) {
	out := "$0|worker1|1700000000|1\ngarbage\n$1|short|123\n\n$2|worker3|notanumber|x\n"
	c := fakeClient(func(cmd *exec.Cmd) ([]byte, []byte, error) {
		return []byte(out), nil, nil
	})
	sessions, err := c.ListSessions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected malformed records dropped, got %d sessions", len(sessions))
	}
	// Unparseable numeric fields default to zero rather than dropping the record.
	third := sessions[1]
	if third.Name != "worker3" || third.CreatedAt != 0 || third.AttachedClients != 0 {
		t.Fatalf("unexpected session from bad numerics: %#v", third)
	}
}

func TestListSessionsEmptyServerIsNotAnError(t *testing.T) {
	diagnostics := []string{
		"no server running on /tmp/tmux-1000/default",
		"no sessions",
	}
	for _, diag := range diagnostics {
		c := fakeClient(func(cmd *exec.Cmd) ([]byte, []byte, error) {
			return nil, []byte(diag), errors.New("exit status 1")
		})
		sessions, err := c.ListSessions()
		if err != nil {
			t.Fatalf("diagnostic %q should map to empty list, got error %v", diag, err)
		}
		if len(sessions) != 0 {
			t.Fatalf("expected empty list for %q, got %d", diag, len(sessions))
		}
	}
}

func TestListSessionsSurfacesOtherFailures(t *testing.T) {
	c := fakeClient(func(cmd *exec.Cmd) ([]byte, []byte, error) {
		return nil, []byte("server exited unexpectedly"), errors.New("exit status 1")
	})
	_, err := c.ListSessions()
	if err == nil {
		t.Fatalf("expected error")
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		t.Fatalf("expected *CommandError, got %T", err)
	}
	if !strings.Contains(cmdErr.Error(), "server exited unexpectedly") {
		t.Fatalf("error should carry the raw diagnostic, got %q", cmdErr.Error())
	}
}

func TestCapturePane(t *testing.T) {
	c := fakeClient(func(cmd *exec.Cmd) ([]byte, []byte, error) {
		want := []string{"capture-pane", "-p", "-t", "$3"}
		got := cmd.Args[len(cmd.Args)-len(want):]
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("unexpected args: %v", cmd.Args)
			}
		}
		return []byte("Thinking...\n"), nil, nil
	})
	content, err := c.CapturePane("$3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if content != "Thinking...\n" {
		t.Fatalf("unexpected content %q", content)
	}
}

func TestNewSessionIsolatesHistory(t *testing.T) {
	stateDir := t.TempDir()
	var env []string
	c := NewClient("tmux", "", stateDir)
	c.run = func(cmd *exec.Cmd) ([]byte, []byte, error) {
		env = cmd.Env
		return nil, nil, nil
	}
	if err := c.NewSession("worker1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(stateDir, "history")); err != nil {
		t.Fatalf("history dir not created: %v", err)
	}
	want := "HISTFILE=" + filepath.Join(stateDir, "history", "worker1.hist")
	found := false
	for _, entry := range env {
		if entry == want {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("expected %q in child env", want)
	}
}

func TestKillSessionError(t *testing.T) {
	c := fakeClient(func(cmd *exec.Cmd) ([]byte, []byte, error) {
		return nil, []byte("can't find session: $9"), errors.New("exit status 1")
	})
	err := c.KillSession("$9")
	if err == nil || !strings.Contains(err.Error(), "can't find session") {
		t.Fatalf("expected kill failure diagnostic, got %v", err)
	}
}

func TestAttachCommand(t *testing.T) {
	c := NewClient("tmux", "/tmp/sock", "")
	cmd := c.AttachCommand("$1")
	want := []string{"tmux", "-S", "/tmp/sock", "attach-session", "-t", "$1"}
	if len(cmd.Args) != len(want) {
		t.Fatalf("unexpected args: %v", cmd.Args)
	}
	for i := range want {
		if cmd.Args[i] != want[i] {
			t.Fatalf("arg %d: got %q, want %q", i, cmd.Args[i], want[i])
		}
	}
}

func TestResolveSocketPathPrefersFlag(t *testing.T) {
	got, err := ResolveSocketPath("/tmp/explicit")
	if err != nil || got != "/tmp/explicit" {
		t.Fatalf("got %q, %v", got, err)
	}
}
