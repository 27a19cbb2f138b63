package tmux

import (
	"fmt"
	"os/exec"
	"testing"
)

// TestResponse is a canned result for one tmux subcommand in tests.
type TestResponse struct {
	Stdout string
	Stderr string
	Err    error
}

// NewTestClient returns a Client whose runner serves canned responses
// instead of executing tmux. Responses are keyed by subcommand, optionally
// suffixed with the -t target ("capture-pane $0"); the more specific key
// wins. Missing keys fail the test.
func NewTestClient(t testing.TB, responses map[string]TestResponse) *Client {
	t.Helper()
	c := NewClient("tmux", "", t.TempDir())
	c.run = func(cmd *exec.Cmd) ([]byte, []byte, error) {
		sub, target := splitInvocation(cmd.Args[1:])
		if target != "" {
			if resp, ok := responses[fmt.Sprintf("%s %s", sub, target)]; ok {
				return []byte(resp.Stdout), []byte(resp.Stderr), resp.Err
			}
		}
		if resp, ok := responses[sub]; ok {
			return []byte(resp.Stdout), []byte(resp.Stderr), resp.Err
		}
		t.Fatalf("unexpected tmux invocation: %v", cmd.Args)
		return nil, nil, nil
	}
	return c
}

// splitInvocation extracts the subcommand and the -t target from an argv
// tail, skipping a leading -S socket pair.
func splitInvocation(args []string) (sub, target string) {
	i := 0
	if i < len(args) && args[i] == "-S" {
		i += 2
	}
	if i < len(args) {
		sub = args[i]
	}
	for j := i; j < len(args)-1; j++ {
		if args[j] == "-t" {
			target = args[j+1]
		}
	}
	return sub, target
}
