// Package logging configures the process-wide structured logger: console
// plus session log file, with optional Graylog GELF shipping.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
)

// Manager owns the configured slog logger.
type Manager struct {
	logger *slog.Logger
}

// NewManager creates an unconfigured manager; Setup must be called before
// Logger returns anything but the default logger.
func NewManager() *Manager {
	return &Manager{}
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup initializes logging to stdout and, when non-nil/non-empty, a log
// file and a Graylog endpoint.
func (m *Manager) Setup(file io.Writer, level string, gelfAddr string) error {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}

	handlers := []slog.Handler{slog.NewTextHandler(os.Stdout, opts)}

	if file != nil {
		handlers = append(handlers, slog.NewTextHandler(file, opts))
	}

	if gelfAddr != "" {
		w, err := gelf.NewWriter(gelfAddr)
		if err != nil {
			return fmt.Errorf("connecting gelf writer to %s: %w", gelfAddr, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(w, opts))
	}

	m.logger = slog.New(newFanoutHandler(handlers))
	m.logger.Info("Logging initialized", "level", level)
	return nil
}

// Logger returns the configured logger, or slog.Default before Setup.
func (m *Manager) Logger() *slog.Logger {
	if m.logger == nil {
		return slog.Default()
	}
	return m.logger
}

// SessionLogPath builds the session log file path using OS-appropriate
// separators.
func SessionLogPath(logsDir string, sessionStart time.Time) string {
	return filepath.Join(
		logsDir,
		fmt.Sprintf("armorcalc.%s.log", sessionStart.Format("20060102_150405")),
	)
}
