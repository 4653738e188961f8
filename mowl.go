package mowl

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync/atomic"

	"golang.org/x/term"

	"github.com/mowl-logging/mowl/core"
	"github.com/mowl-logging/mowl/formatter"
	"github.com/mowl-logging/mowl/handler"
)

// ErrAlreadyInitialized is returned when Init (or any of its variants)
// is called after a global logger has already been installed.
var ErrAlreadyInitialized = errors.New("mowl: logger already initialized")

// Config controls the logger installed by InitWithConfig
type Config struct {
	// Level is the minimum enabled level (default: TraceLevel)
	Level Level
	// Writer receives the log output (default: os.Stderr)
	Writer io.Writer
	// DisableColors turns off ANSI escape sequences. Colors are also
	// disabled automatically when Writer is a file that is not a
	// terminal.
	DisableColors bool
	// IncludeCaller appends [file:line] to every line
	IncludeCaller bool
}

// Logger renders enabled records through its handler. It is immutable
// after construction and safe for concurrent use.
type Logger struct {
	handler handler.Handler
	level   Level
}

var (
	// installed guards the one-way Uninitialized -> Initialized
	// transition; compare-and-set keeps concurrent Init calls
	// exactly-once.
	installed atomic.Bool
	global    atomic.Pointer[Logger]
)

// New builds a Logger from cfg without touching the global state
func New(cfg Config) *Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	colors := !cfg.DisableColors
	if f, ok := w.(*os.File); ok && colors {
		colors = term.IsTerminal(int(f.Fd()))
	}

	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer: w,
		Formatter: formatter.NewTextFormatter(formatter.Config{
			DisableColors: !colors,
			IncludeCaller: cfg.IncludeCaller,
		}),
	})

	return &Logger{handler: h, level: cfg.Level}
}

// Init installs the global logger with the minimum level set to
// TraceLevel, so every record is emitted:
//
//	if err := mowl.Init(); err != nil {
//		// a logger is already installed
//	}
//	mowl.Warn("Warning")
func Init() error {
	return InitWithConfig(Config{})
}

// InitWithLevel installs the global logger with a specific minimum level
func InitWithLevel(level Level) error {
	return InitWithConfig(Config{Level: level})
}

// InitWithLevelAndWithoutColors installs the global logger with a
// specific minimum level and without any coloring
func InitWithLevelAndWithoutColors(level Level) error {
	return InitWithConfig(Config{Level: level, DisableColors: true})
}

// InitWithConfig installs the global logger exactly once. Any second
// initialization attempt fails with ErrAlreadyInitialized rather than
// silently replacing the first logger. The installed logger also
// becomes the default log/slog backend, so slog calls reach the same
// sink.
func InitWithConfig(cfg Config) error {
	if !installed.CompareAndSwap(false, true) {
		return ErrAlreadyInitialized
	}

	l := New(cfg)
	global.Store(l)
	slog.SetDefault(slog.New(handler.NewSlogHandler(l.handler, l.level)))
	return nil
}

// Enabled reports whether records at the given level are emitted
func (l *Logger) Enabled(level Level) bool {
	return level >= l.level
}

// Log emits a record at the given level
func (l *Logger) Log(level Level, msg string) {
	if level < l.level {
		return
	}
	l.log(level, msg, 3)
}

// log renders a single record. Sink failures are reported once on
// stdout and otherwise swallowed: logging must never take down the
// host application.
func (l *Logger) log(level Level, msg string, callerSkip int) {
	entry := core.GetEntry()
	entry.Level = level
	entry.Message = msg
	entry.Caller = core.GetCaller(callerSkip)
	entry.Module = entry.Caller.PackagePath()

	if err := l.handler.Handle(entry); err != nil {
		fmt.Fprintf(os.Stdout, "Logging failed: %v\n", err)
	}

	core.PutEntry(entry)
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) {
	if TraceLevel < l.level {
		return
	}
	l.log(TraceLevel, msg, 3)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if DebugLevel < l.level {
		return
	}
	l.log(DebugLevel, msg, 3)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if InfoLevel < l.level {
		return
	}
	l.log(InfoLevel, msg, 3)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if WarnLevel < l.level {
		return
	}
	l.log(WarnLevel, msg, 3)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if ErrorLevel < l.level {
		return
	}
	l.log(ErrorLevel, msg, 3)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if TraceLevel < l.level {
		return
	}
	l.log(TraceLevel, fmt.Sprintf(format, args...), 3)
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if DebugLevel < l.level {
		return
	}
	l.log(DebugLevel, fmt.Sprintf(format, args...), 3)
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if InfoLevel < l.level {
		return
	}
	l.log(InfoLevel, fmt.Sprintf(format, args...), 3)
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if WarnLevel < l.level {
		return
	}
	l.log(WarnLevel, fmt.Sprintf(format, args...), 3)
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if ErrorLevel < l.level {
		return
	}
	l.log(ErrorLevel, fmt.Sprintf(format, args...), 3)
}

// Flush forces buffered output to be written
func (l *Logger) Flush() error {
	return l.handler.Flush()
}

// Package-level functions using the global logger. Before Init they
// are no-ops, mirroring an uninstalled log sink.

// Trace logs a trace message using the global logger
func Trace(msg string) {
	if l := global.Load(); l != nil && TraceLevel >= l.level {
		l.log(TraceLevel, msg, 3)
	}
}

// Debug logs a debug message using the global logger
func Debug(msg string) {
	if l := global.Load(); l != nil && DebugLevel >= l.level {
		l.log(DebugLevel, msg, 3)
	}
}

// Info logs an info message using the global logger
func Info(msg string) {
	if l := global.Load(); l != nil && InfoLevel >= l.level {
		l.log(InfoLevel, msg, 3)
	}
}

// Warn logs a warning message using the global logger
func Warn(msg string) {
	if l := global.Load(); l != nil && WarnLevel >= l.level {
		l.log(WarnLevel, msg, 3)
	}
}

// Error logs an error message using the global logger
func Error(msg string) {
	if l := global.Load(); l != nil && ErrorLevel >= l.level {
		l.log(ErrorLevel, msg, 3)
	}
}

// Tracef logs a formatted trace message using the global logger
func Tracef(format string, args ...interface{}) {
	if l := global.Load(); l != nil && TraceLevel >= l.level {
		l.log(TraceLevel, fmt.Sprintf(format, args...), 3)
	}
}

// Debugf logs a formatted debug message using the global logger
func Debugf(format string, args ...interface{}) {
	if l := global.Load(); l != nil && DebugLevel >= l.level {
		l.log(DebugLevel, fmt.Sprintf(format, args...), 3)
	}
}

// Infof logs a formatted info message using the global logger
func Infof(format string, args ...interface{}) {
	if l := global.Load(); l != nil && InfoLevel >= l.level {
		l.log(InfoLevel, fmt.Sprintf(format, args...), 3)
	}
}

// Warnf logs a formatted warning message using the global logger
func Warnf(format string, args ...interface{}) {
	if l := global.Load(); l != nil && WarnLevel >= l.level {
		l.log(WarnLevel, fmt.Sprintf(format, args...), 3)
	}
}

// Errorf logs a formatted error message using the global logger
func Errorf(format string, args ...interface{}) {
	if l := global.Load(); l != nil && ErrorLevel >= l.level {
		l.log(ErrorLevel, fmt.Sprintf(format, args...), 3)
	}
}

// Flush forces buffered output of the global logger to be written
func Flush() error {
	if l := global.Load(); l != nil {
		return l.Flush()
	}
	return nil
}
