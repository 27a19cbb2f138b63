package tmux

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/tmux-agent-dash/internal/status"
)

// Session is one tmux session as observed on the last list call. Identity is
// Id; Name is treated as immutable once observed. Status is filled in by the
// poller, never reported by tmux itself.
type Session struct {
	Id              string
	Name            string
	CreatedAt       int64
	AttachedClients int
	Status          status.Status
}

// listFormat yields one pipe-delimited record per session.
const listFormat = "#{session_id}|#{session_name}|#{session_created}|#{session_attached}"

// ListSessions returns all sessions known to the server. A missing server or
// an empty session list is a normal condition and yields an empty slice.
func (c *Client) ListSessions() ([]Session, error) {
	args := []string{"list-sessions", "-F", listFormat}
	stdout, stderr, err := c.run(c.command(args...))
	if err != nil {
		diag := string(stderr)
		if strings.Contains(diag, "no server running") || strings.Contains(diag, "no sessions") {
			return []Session{}, nil
		}
		return nil, &CommandError{Args: args, Stderr: diag, Err: err}
	}

	sessions := make([]Session, 0, 8)
	for _, line := range strings.Split(string(stdout), "\n") {
		if s, ok := parseSessionLine(line); ok {
			sessions = append(sessions, s)
		}
	}
	return sessions, nil
}

// parseSessionLine decodes one list-sessions record. Records with fewer than
// four fields are dropped; unparseable numeric fields default to 0.
func parseSessionLine(line string) (Session, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Session{}, false
	}
	parts := strings.Split(line, "|")
	if len(parts) < 4 {
		return Session{}, false
	}
	created, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		created = 0
	}
	attached, err := strconv.Atoi(parts[3])
	if err != nil {
		attached = 0
	}
	return Session{
		Id:              parts[0],
		Name:            parts[1],
		CreatedAt:       created,
		AttachedClients: attached,
	}, true
}

// CapturePane returns the currently visible text of the session's active
// pane.
func (c *Client) CapturePane(id string) (string, error) {
	args := []string{"capture-pane", "-p", "-t", id}
	stdout, stderr, err := c.run(c.command(args...))
	if err != nil {
		return "", &CommandError{Args: args, Stderr: string(stderr), Err: err}
	}
	return string(stdout), nil
}

// NewSession creates a detached session. The spawned shell's history file is
// pointed at an isolated per-session path under the state directory so later
// inspection does not cross-contaminate sessions.
func (c *Client) NewSession(name string) error {
	historyDir := filepath.Join(c.stateDir, "history")
	if err := os.MkdirAll(historyDir, 0o755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	historyFile := filepath.Join(historyDir, name+".hist")

	args := []string{"new-session", "-d", "-s", name}
	cmd := c.command(args...)
	cmd.Env = append(os.Environ(), "HISTFILE="+historyFile)
	if _, stderr, err := c.run(cmd); err != nil {
		return &CommandError{Args: args, Stderr: string(stderr), Err: err}
	}
	return nil
}

// KillSession destroys the session with the given id.
func (c *Client) KillSession(id string) error {
	args := []string{"kill-session", "-t", id}
	if _, stderr, err := c.run(c.command(args...)); err != nil {
		return &CommandError{Args: args, Stderr: string(stderr), Err: err}
	}
	return nil
}

// AttachCommand builds the foreground attach invocation. The caller runs it
// with inherited standard streams; its exit status is advisory only.
func (c *Client) AttachCommand(id string) *exec.Cmd {
	return c.command("attach-session", "-t", id)
}
