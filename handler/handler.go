package handler

import "github.com/mowl-logging/mowl/core"

// Handler defines the interface for log sinks
type Handler interface {
	// Handle renders a log entry. The entry is only valid for the
	// duration of the call; handlers must not retain it.
	Handle(entry *core.Entry) error

	// Flush forces buffered output to be written. Sinks that write
	// line-at-a-time treat this as a pass-through.
	Flush() error

	// Close closes the handler and releases resources
	Close() error
}
