// Package logger provides leveled logging for docqa.
// Errors and warnings are always printed to stderr; info and debug
// messages appear when the level is raised, normally via the --verbose
// flag, to make the retrieval pipeline observable.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Level controls which messages are printed.
type Level int

// Levels, from quietest to noisiest.
const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
)

var (
	mu     sync.RWMutex
	level  Level     = LevelWarn
	output io.Writer = os.Stderr
)

// SetLevel sets the logging level.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
}

// SetVerbose raises the level to debug (true) or restores the default (false).
func SetVerbose(v bool) {
	if v {
		SetLevel(LevelDebug)
	} else {
		SetLevel(LevelWarn)
	}
}

// SetOutput sets the output writer. Defaults to os.Stderr.
// Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func logf(l Level, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if l <= level {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Error prints an error message.
func Error(format string, args ...any) {
	logf(LevelError, "[ERROR] ", format, args...)
}

// Warn prints a warning message.
func Warn(format string, args ...any) {
	logf(LevelWarn, "[WARN] ", format, args...)
}

// Info prints an informational message.
func Info(format string, args ...any) {
	logf(LevelInfo, "[INFO] ", format, args...)
}

// Debug prints a debug message.
func Debug(format string, args ...any) {
	logf(LevelDebug, "[DEBUG] ", format, args...)
}

// Section prints a section header at debug level.
func Section(name string) {
	logf(LevelDebug, "", "\n=== %s ===", name)
}
