// Package logging writes the board log under .git/board/logs.
//
// Every entry goes to board.log. Entries about a task are also appended to
// that task's own file, which is what 'board logs <id>' shows.
package logging

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/runoshun/git-board/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Attribute keys routed by the handler instead of printed as key=value.
const (
	TaskKey     = "task"
	CategoryKey = "category"
)

// Logger is a slog.Logger whose handler writes board log lines.
type Logger struct {
	files   *fileSet
	handler *lineHandler
	log     *slog.Logger
}

// New creates a Logger writing under boardDir/logs at level and above.
// With an empty boardDir nothing is written.
func New(boardDir string, level slog.Level) *Logger {
	files := newFileSet(boardDir)
	h := &lineHandler{files: files, level: level}
	return &Logger{files: files, handler: h, log: slog.New(h)}
}

// ParseLevel parses a log level name. Unknown names mean info.
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Slog returns the underlying slog.Logger. Attributes named TaskKey and
// CategoryKey route the entry like the Info/Warn helpers do.
func (l *Logger) Slog() *slog.Logger {
	return l.log
}

// Close closes the open log files. Later entries reopen them.
func (l *Logger) Close() error {
	return l.files.Close()
}

func (l *Logger) write(level slog.Level, taskID, category, msg string) {
	l.log.LogAttrs(context.Background(), level, msg,
		slog.String(TaskKey, taskID),
		slog.String(CategoryKey, category),
	)
}

// Info logs an info message.
func (l *Logger) Info(taskID, category, msg string) {
	l.write(slog.LevelInfo, taskID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(taskID, category, msg string) {
	l.write(slog.LevelDebug, taskID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(taskID, category, msg string) {
	l.write(slog.LevelWarn, taskID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(taskID, category, msg string) {
	l.write(slog.LevelError, taskID, category, msg)
}

// setNow fixes the timestamp for tests.
func (l *Logger) setNow(now func() time.Time) {
	l.handler.now = now
}
