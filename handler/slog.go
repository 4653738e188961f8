package handler

import (
	"context"
	"log/slog"

	"github.com/mowl-logging/mowl/core"
)

// LevelTrace is the slog level that maps to core.TraceLevel. log/slog
// has no named trace constant; this follows the common convention of
// placing trace four steps below debug.
const LevelTrace = slog.LevelDebug - 4

// SlogHandler adapts a Handler to the log/slog.Handler interface,
// letting the colorized console sink serve as the process-wide slog
// backend.
type SlogHandler struct {
	handler Handler
	level   core.Level
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given Handler.
func NewSlogHandler(h Handler, level core.Level) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle converts a slog.Record to a core.Entry and passes it to the
// wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	if !record.Time.IsZero() {
		entry.Time = record.Time
	}
	entry.Level = slogLevelToCore(record.Level)
	entry.Message = record.Message
	entry.Caller = core.CallerFromPC(record.PC)
	entry.Module = entry.Caller.PackagePath()

	err := s.handler.Handle(entry)
	core.PutEntry(entry)
	return err
}

// WithAttrs returns the handler unchanged. Attributes are not part of
// the rendered line format.
func (s *SlogHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return s
}

// WithGroup returns the handler unchanged.
func (s *SlogHandler) WithGroup(_ string) slog.Handler {
	return s
}

// slogLevelToCore converts a slog.Level to a core.Level.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}
