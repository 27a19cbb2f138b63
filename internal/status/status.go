package status

import (
	"regexp"
	"strings"
)

// Status is the inferred lifecycle phase of an agent running inside a
// session. It is derived from pane text only and is best-effort: a session
// whose output matches no known pattern stays Unknown.
type Status int

// Values are ordered by classification priority: when a snapshot contains
// markers from several families the highest value wins.
const (
	Unknown Status = iota
	Idle
	Busy
	WaitingForInput
	Error
)

func (s Status) String() string {
	switch s {
	case Busy:
		return "busy"
	case Idle:
		return "idle"
	case WaitingForInput:
		return "waiting"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// windowLines bounds how much recent pane output is considered. Older lines
// describe past states and would otherwise keep a long-lived session stuck
// on a stale error marker.
const windowLines = 20

// Classifier matches pane text against the four pattern families. Compile
// it once at startup and share it read-only; Classify never mutates state.
type Classifier struct {
	errorRE   *regexp.Regexp
	waitingRE *regexp.Regexp
	busyRE    *regexp.Regexp
	idleRE    *regexp.Regexp
}

// NewClassifier compiles the built-in pattern set.
func NewClassifier() *Classifier {
	return &Classifier{
		errorRE:   regexp.MustCompile(`(?mi)(^Error:|^error:|Exception|FAILED|panic|fatal|crash)`),
		waitingRE: regexp.MustCompile(`(?mi)(^\s*>\s*$|Type a message|Press Enter|waiting for input|\? $|\[y/n\]|\(y/N\)|\(Y/n\))`),
		busyRE:    regexp.MustCompile(`(?mi)(Thinking\.{3}|Processing|Loading|Working|⠋|⠙|⠹|⠸|⠼|⠴|⠦|⠧|⠇|⠏|\.\.\.$)`),
		idleRE:    regexp.MustCompile(`(?m)(^\$\s*$|^❯\s*$|^>\s*$|claude>)`),
	}
}

// Classify inspects the last windowLines lines of a pane snapshot and
// returns the first matching family in priority order
// (Error > WaitingForInput > Busy > Idle). No match yields Unknown.
func (c *Classifier) Classify(content string) Status {
	recent := recentWindow(content)
	switch {
	case c.errorRE.MatchString(recent):
		return Error
	case c.waitingRE.MatchString(recent):
		return WaitingForInput
	case c.busyRE.MatchString(recent):
		return Busy
	case c.idleRE.MatchString(recent):
		return Idle
	default:
		return Unknown
	}
}

func recentWindow(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) > windowLines {
		lines = lines[len(lines)-windowLines:]
	}
	return strings.Join(lines, "\n")
}
