package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/tmux-agent-dash/internal/app"
	"github.com/atomicstack/tmux-agent-dash/internal/config"
	"github.com/atomicstack/tmux-agent-dash/internal/logging"
	"github.com/atomicstack/tmux-agent-dash/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	events.App.Start(startupTracePayload(runtimeCfg))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": cfg.Flags,
		"tty":   probeTerminals(),
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	}
	return payload
}

type terminalProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
}

// probeTerminals records which standard descriptors are terminals and their
// dimensions. The dashboard needs a real terminal on stdin/stdout; the trace
// entry makes "why did it render 80x24" questions answerable after the fact.
func probeTerminals() []terminalProbe {
	streams := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	probes := make([]terminalProbe, 0, len(streams))
	for _, s := range streams {
		p := terminalProbe{Name: s.name}
		fd := int(s.file.Fd())
		if term.IsTerminal(fd) {
			p.IsTerminal = true
			if w, h, err := term.GetSize(fd); err == nil {
				p.Width, p.Height = w, h
			}
		}
		probes = append(probes, p)
	}
	return probes
}
