// Package core defines the shared types used across mowl.
//
// It provides the Level type for severity filtering and the Entry type
// that represents a single log record: timestamp, level, originating
// module path, and message text.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must return
// it with PutEntry once the handler has consumed it.
//
// Caller information is captured with GetCaller (stack-walk based) or
// CallerFromPC (from a log/slog record's program counter). A missing
// caller is never an error; CallerInfo.PackagePath falls back to "?"
// so that rendering always succeeds.
package core
