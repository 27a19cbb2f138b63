package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/tmux-agent-dash/internal/app"
)

// Config captures runtime configuration for the dashboard.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSocketPath   = "TMUX_AGENT_DASH_SOCKET"
	envTmuxBinary   = "TMUX_AGENT_DASH_TMUX"
	envPollInterval = "TMUX_AGENT_DASH_POLL_INTERVAL"
	envStateDir     = "TMUX_AGENT_DASH_STATE_DIR"
	envTrace        = "TMUX_AGENT_DASH_TRACE"
	envLogFile      = "TMUX_AGENT_DASH_LOG_FILE"
	envVerbose      = "TMUX_AGENT_DASH_VERBOSE"
)

const defaultPollInterval = time.Second

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("tmux-agent-dash", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket (overrides environment detection)")
	tmuxBin := fs.String("tmux", envOrDefault(env, envTmuxBinary, "tmux"), "tmux binary to invoke")
	pollInterval := fs.Duration("poll-interval", envOrDuration(env, envPollInterval, defaultPollInterval), "interval between session polls")
	stateDir := fs.String("state-dir", envOrDefault(env, envStateDir, ""), "directory for per-session shell history files")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "log success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *pollInterval <= 0 {
		return Config{}, fmt.Errorf("poll-interval must be positive (got %s)", *pollInterval)
	}

	cfg := Config{
		App: app.Config{
			SocketPath:   *socket,
			TmuxBinary:   *tmuxBin,
			StateDir:     *stateDir,
			PollInterval: *pollInterval,
			Verbose:      *verbose,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"socket":       *socket,
			"tmux":         *tmuxBin,
			"pollInterval": pollInterval.String(),
			"stateDir":     *stateDir,
			"trace":        strconv.FormatBool(*trace),
			"verbose":      strconv.FormatBool(*verbose),
			"logFile":      *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}
