// Package handler provides the Handler interface and the sinks that
// receive enabled log entries.
//
// ConsoleHandler is the one concrete sink: it formats each entry and
// writes it synchronously to an io.Writer (default: os.Stderr). A
// mutex serializes access to the writer, so concurrent loggers always
// produce whole lines. Writes are best-effort; the caller decides what
// to do with a write error, and the facade swallows it.
//
// SlogHandler adapts any Handler to log/slog.Handler, so the sink can
// be installed as the process-wide backend for the standard library's
// leveled logging calls.
package handler
