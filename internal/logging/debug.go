package logging

import (
	"io"
	"log/slog"
	"os"
	"sync/atomic"
)

var (
	enabled atomic.Bool
	output  io.Writer = os.Stderr
)

// SetEnabled turns debug logging on or off. The CLI calls it with the resolved
// Application.Debug setting, so --debug and TASK_DEBUG follow the usual precedence.
func SetEnabled(on bool) {
	enabled.Store(on)
}

// Enabled reports whether debug logging is on
func Enabled() bool {
	return enabled.Load()
}

// Logger returns a structured logger writing to stderr when debug is enabled,
// and a logger that drops everything otherwise. Stdout is reserved for command output.
func Logger() *slog.Logger {
	if !Enabled() {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(output, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
