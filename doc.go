// Package mowl is a minimal logger with color support.
//
// Init installs a process-wide logger that renders leveled log records
// to standard error, one line per record, with ANSI colors bracketing
// the timestamp, the originating module path, and the level label:
//
//	if err := mowl.Init(); err != nil {
//		// a logger was already installed
//	}
//	mowl.Warn("Warning")
//
// Initialization happens exactly once per process. A second Init call
// of any variant returns ErrAlreadyInitialized instead of replacing
// the installed logger. InitWithLevel sets the minimum enabled level
// (Init defaults to TraceLevel, emitting everything), and
// InitWithLevelAndWithoutColors additionally turns coloring off:
//
//	mowl.InitWithLevel(mowl.WarnLevel)
//
//	mowl.Warn("A warning")      // emitted
//	mowl.Info("An info message") // suppressed
//
// Init also registers the sink as the default log/slog backend, so
// code that logs through the standard library ends up on the same
// colorized output. Records below the minimum level cost a single
// comparison; sink write failures are swallowed, logging is strictly
// best-effort.
package mowl
