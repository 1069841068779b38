// Package logger writes structured diagnostics for tsplay to a file.
// The TUI owns the terminal, so nothing here ever writes to stdout.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// DefaultLogPath is the log file used when Init is never called
const DefaultLogPath = "/tmp/tsplay-debug.log"

var (
	slogLogger *slog.Logger
	levelVar   = new(slog.LevelVar)
	logFile    *os.File
	mu         sync.Mutex
	initDone   bool
	debug      bool
)

// SetDebug switches between debug and info level output
func SetDebug(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	debug = enabled
	levelVar.Set(currentLevel())
}

func currentLevel() slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// Init opens the log file at path. Calling it again is a no-op until Reset.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()
	return openLocked(path)
}

func openLocked(path string) error {
	if initDone {
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	levelVar.Set(currentLevel())
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	initDone = true

	slogLogger.Info("Logger initialized", "path", path)
	return nil
}

// ensureInit falls back to DefaultLogPath. Must hold mu.
func ensureInit() {
	if initDone {
		return
	}
	if err := openLocked(DefaultLogPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
}

func logf(level slog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil || !slogLogger.Enabled(context.Background(), level) {
		return
	}
	slogLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

// Debug writes a debug message
func Debug(format string, args ...any) { logf(slog.LevelDebug, format, args...) }

// Info writes an info message
func Info(format string, args ...any) { logf(slog.LevelInfo, format, args...) }

// Warn writes a warning message
func Warn(format string, args ...any) { logf(slog.LevelWarn, format, args...) }

// Error writes an error message
func Error(format string, args ...any) { logf(slog.LevelError, format, args...) }

// WithComponent returns a slog.Logger with the component attribute pre-attached.
//
// Example:
//
//	log := logger.WithComponent("copy")
//	log.Debug("copied", "bytes", n)
func WithComponent(component string) *slog.Logger {
	mu.Lock()
	defer mu.Unlock()

	ensureInit()
	if slogLogger == nil {
		return slog.Default()
	}
	return slogLogger.With(slog.String("component", component))
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
}

// Reset closes the log file and forgets all state so Init can run again.
// Tests use it to point the logger at a temp file.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	initDone = false
	slogLogger = nil
	debug = false
	levelVar = new(slog.LevelVar)
}
