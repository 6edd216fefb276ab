package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultFileName is used when no log path is configured
const DefaultFileName = "legalsearch.log"

var (
	// Logger is the global logger instance. It is created once and never
	// replaced; SetOutput and Init reconfigure it in place so goroutines that
	// are already logging never see a swapped pointer.
	Logger = log.NewWithOptions(io.Discard, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.InfoLevel,
	})

	logFile *os.File
)

// Init opens path for appending and routes all logging there.
// The TUI owns the terminal, so logs never go to stdout.
func Init(path string, level string) error {
	if path == "" {
		path = DefaultPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	SetOutput(f, level)
	if logFile != nil {
		logFile.Close()
	}
	logFile = f

	Logger.Info("legalsearch started", "log", path)
	return nil
}

// SetOutput points the logger at w. Unknown levels fall back to info.
func SetOutput(w io.Writer, level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	Logger.SetOutput(w)
	Logger.SetLevel(lvl)
}

// DefaultPath returns the log location under the user config directory
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(dir, "legalsearch", DefaultFileName)
}

// Close detaches the logger from the log file and closes it.
// Later calls log nowhere.
func Close() {
	Logger.Info("legalsearch shutting down")
	Logger.SetOutput(io.Discard)
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// Info logs an info message
func Info(msg string, keyvals ...interface{}) {
	Logger.Info(msg, keyvals...)
}

// Debug logs a debug message
func Debug(msg string, keyvals ...interface{}) {
	Logger.Debug(msg, keyvals...)
}

// Warn logs a warning message
func Warn(msg string, keyvals ...interface{}) {
	Logger.Warn(msg, keyvals...)
}

// Error logs an error message
func Error(msg string, keyvals ...interface{}) {
	Logger.Error(msg, keyvals...)
}
