package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLogFile = "tmux-agent-dash.log"

// Component names for structured logging.
const (
	CompApp     = "app"
	CompBackend = "backend"
	CompUI      = "ui"
)

var (
	mu           sync.RWMutex
	traceEnabled bool
	logger       = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// Configure sets the log destination. Empty values fall back to the default
// path; directories are created automatically when missing. The log file is
// rotated at 10 MB with five backups kept.
func Configure(path string) {
	mu.Lock()
	defer mu.Unlock()
	if strings.TrimSpace(path) == "" {
		path = defaultLogFile
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.New(slog.NewTextHandler(os.Stderr, nil)).
				Error("unable to create log directory", "error", err)
			path = defaultLogFile
		}
	}
	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     10, // days
		Compress:   true,
	}
	logger = slog.New(slog.NewJSONHandler(writer, nil))
}

// SetTraceEnabled toggles emission of trace entries.
func SetTraceEnabled(enabled bool) {
	mu.Lock()
	traceEnabled = enabled
	mu.Unlock()
}

// ForComponent returns a logger tagged with the component name.
func ForComponent(name string) *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger.With("component", name)
}

// Error writes an error to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	mu.RLock()
	l := logger
	mu.RUnlock()
	l.Error(err.Error())
}

// Trace appends a structured entry to the shared log when tracing is
// enabled.
func Trace(event string, payload interface{}) {
	mu.RLock()
	enabled := traceEnabled
	l := logger
	mu.RUnlock()
	if !enabled {
		return
	}
	l.Info("trace", "event", event, "payload", payload)
}
