// Package formatter defines how log entries are serialized into bytes.
//
// It exposes two interfaces: Formatter, which returns a []byte, and
// WriterFormatter, which writes directly to an io.Writer. Handlers
// check for WriterFormatter at construction time and prefer it when
// available, eliminating the intermediate byte slice allocation on
// the write path.
//
// The built-in TextFormatter implements both. It renders one line per
// entry: a dim timestamp, the originating module path in bright blue,
// the level label in a level-specific color (Error=bright red,
// Warn=bright yellow, Info=bright green, Debug=bright cyan,
// Trace=bright white), and the plain message. Level lookup is a fixed
// table; the colorized level brackets are pre-computed at init so the
// common path is a single WriteString call.
//
// Formatting uses a pooled bytes.Buffer and Go's Append-style
// functions (time.AppendFormat) to avoid per-call allocations.
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
