// Package logger provides the leveled, optionally colored logger used by the
// CLI. It satisfies the root package's Logger interface.
package logger

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
)

// Level defines log severity levels.
type Level int

const (
	// Levels from least to most restrictive
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// Logger writes timestamped, leveled lines to a single destination.
type Logger struct {
	out       io.Writer
	useColors bool
	level     Level
}

// New creates a Logger writing to out at Info level.
func New(out io.Writer, useColors bool) *Logger {
	return &Logger{
		out:       out,
		useColors: useColors,
		level:     LevelInfo,
	}
}

// WithLevel sets the log level and returns the logger.
func (l *Logger) WithLevel(level Level) *Logger {
	l.level = level
	return l
}

// SetLevel sets the log level from its string name. Unknown names fall back
// to Info.
func (l *Logger) SetLevel(levelStr string) {
	l.WithLevel(ParseLevel(levelStr))
}

// ParseLevel converts a string level to a Level.
func ParseLevel(level string) Level {
	switch strings.ToLower(level) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "none", "off":
		return LevelNone
	default:
		return LevelInfo
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.emit(LevelDebug, "DEBUG", color.CyanString, format, args...)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.emit(LevelInfo, "INFO", color.BlueString, format, args...)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.emit(LevelWarn, "WARN", color.YellowString, format, args...)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.emit(LevelError, "ERROR", color.RedString, format, args...)
}

func (l *Logger) emit(level Level, prefix string, colorize func(string, ...interface{}) string, format string, args ...interface{}) {
	if l.level > level {
		return
	}

	if l.useColors {
		prefix = colorize(prefix)
	}

	fmt.Fprintf(l.out, "[%s %s] %s\n", time.Now().Format("15:04:05.000"), prefix, fmt.Sprintf(format, args...))
}
