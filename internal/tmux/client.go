package tmux

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
)

// runFunc executes a prepared command and returns its stdout and stderr.
// Injectable so tests can exercise parsing and error mapping without a
// running tmux server.
type runFunc func(cmd *exec.Cmd) (stdout, stderr []byte, err error)

// Client invokes the tmux binary and maps its output to structured results.
// It holds no mutable state; a single instance is shared by the poller and
// the command executor.
type Client struct {
	binary     string
	socketPath string
	stateDir   string
	run        runFunc
}

// NewClient builds a client for the given tmux binary, server socket and
// per-session state directory. Empty values fall back to "tmux", the default
// socket and ~/.tmux-agent-dash respectively.
func NewClient(binary, socketPath, stateDir string) *Client {
	if strings.TrimSpace(binary) == "" {
		binary = "tmux"
	}
	if strings.TrimSpace(stateDir) == "" {
		stateDir = DefaultStateDir()
	}
	return &Client{
		binary:     binary,
		socketPath: socketPath,
		stateDir:   stateDir,
		run:        runCommand,
	}
}

// CommandError reports a tmux invocation that failed for a reason other than
// the recognised "empty server" cases. Stderr carries the raw diagnostic.
type CommandError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	diag := strings.TrimSpace(e.Stderr)
	if diag == "" {
		return fmt.Sprintf("tmux %s: %v", strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("tmux %s: %s", strings.Join(e.Args, " "), diag)
}

func (e *CommandError) Unwrap() error { return e.Err }

// DefaultStateDir returns the directory holding per-session shell history
// files.
func DefaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tmux-agent-dash"
	}
	return filepath.Join(home, ".tmux-agent-dash")
}

// ResolveSocketPath determines the tmux server socket: explicit flag value,
// then $TMUX_AGENT_DASH_SOCKET, then the socket of the surrounding tmux
// client, then the per-user default.
func ResolveSocketPath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if envSocket := os.Getenv("TMUX_AGENT_DASH_SOCKET"); envSocket != "" {
		return envSocket, nil
	}
	if tmuxEnv := os.Getenv("TMUX"); tmuxEnv != "" {
		parts := strings.Split(tmuxEnv, ",")
		if len(parts) > 0 && parts[0] != "" {
			return parts[0], nil
		}
	}
	baseDir := os.Getenv("TMUX_TMPDIR")
	if baseDir == "" {
		baseDir = "/tmp"
	}
	u, err := user.Current()
	if err != nil {
		return "", err
	}
	return filepath.Join(baseDir, fmt.Sprintf("tmux-%s", u.Uid), "default"), nil
}

func (c *Client) baseArgs() []string {
	if strings.TrimSpace(c.socketPath) == "" {
		return []string{}
	}
	return []string{"-S", c.socketPath}
}

func (c *Client) command(args ...string) *exec.Cmd {
	full := append(c.baseArgs(), args...)
	return exec.Command(c.binary, full...) //nolint:gosec
}

func runCommand(cmd *exec.Cmd) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}
