package handler

import (
	"io"
	"os"
	"sync"

	"github.com/mowl-logging/mowl/core"
	"github.com/mowl-logging/mowl/formatter"
)

// ConsoleHandler writes log entries to a terminal or any io.Writer.
// Writes are synchronous and serialized by a mutex, so lines produced
// by concurrent callers never interleave characters.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stderr)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stderr
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
	}

	// Cache WriterFormatter for zero-alloc path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// Handle formats the entry and writes it as a single line
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(entry, h.writer)
		h.mu.Unlock()
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, writeErr := h.writer.Write(data)
	h.mu.Unlock()

	return writeErr
}

// Flush forces buffered output to be written. Output is unbuffered
// line-at-a-time, so this only matters when the configured writer
// buffers on its own (e.g. a bufio.Writer).
func (h *ConsoleHandler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if f, ok := h.writer.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Close flushes the handler. The writer itself is owned by the caller
// and stays open.
func (h *ConsoleHandler) Close() error {
	return h.Flush()
}
