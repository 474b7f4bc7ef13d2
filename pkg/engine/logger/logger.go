// Package logger provides leveled logging for the engine.
// A nil *Logger is valid and discards everything, so game code never has to
// check before logging.
package logger

import (
	"io"
	"log"
	"os"
)

// Logger writes info, warning, error and game event lines.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger

	// verbose enables Event output
	verbose bool
}

// New creates a logger writing info and warnings to out and errors to errOut.
// Lines read "<date> <time> [LEVEL] message".
func New(out, errOut io.Writer, verbose bool) *Logger {
	flags := log.Ldate | log.Ltime | log.Lmsgprefix
	return &Logger{
		infoLogger:  log.New(out, "[INFO] ", flags),
		warnLogger:  log.New(out, "[WARN] ", flags),
		errorLogger: log.New(errOut, "[ERROR] ", flags),
		verbose:     verbose,
	}
}

// NewStderr creates a logger writing everything to stderr, leaving stdout to the TUI
func NewStderr(verbose bool) *Logger {
	return New(os.Stderr, os.Stderr, verbose)
}

// Discard returns a logger that drops all output
func Discard() *Logger {
	return New(io.Discard, io.Discard, false)
}

// Info logs informational messages.
func (l *Logger) Info(format string, a ...any) {
	if l == nil {
		return
	}
	l.infoLogger.Printf(format, a...)
}

// Warn logs warning messages.
func (l *Logger) Warn(format string, a ...any) {
	if l == nil {
		return
	}
	l.warnLogger.Printf(format, a...)
}

// Error logs error messages.
func (l *Logger) Error(format string, a ...any) {
	if l == nil {
		return
	}
	l.errorLogger.Printf(format, a...)
}

// Event logs a game event such as a turn, a capture or a drained tick.
// Events are only written when the logger is verbose.
func (l *Logger) Event(kind, actor, format string, a ...any) {
	if l == nil || !l.verbose {
		return
	}
	l.infoLogger.Printf("[EVENT:%s] %s | "+format, append([]any{kind, actor}, a...)...)
}
