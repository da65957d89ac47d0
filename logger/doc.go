// Package logger is the logging facade of lovelog.
//
// A Logger is immutable after construction — the level, target, and
// handler are set once via the Builder and never modified. This makes
// Logger inherently safe for concurrent use without any locking on the
// read path.
//
// Loggers carry a target: the module/component name emitted with every
// entry and used by the pretty formatter as the alignment key. Child
// loggers extend the target with Named:
//
//	app := logger.NewBuilder().
//	    WithTarget("app").
//	    WithHandler(h).
//	    Build()
//	net := app.Named("net") // logs under "app::net"
//
// The package holds a process-wide global logger that starts as a
// no-op. SetGlobal installs a real one exactly once; a second attempt
// returns ErrGlobalAlreadySet (or panics, via MustSetGlobal). The
// package-level functions Info, Error, Debugf, etc. delegate to the
// global instance.
//
// Level checks happen before any allocation, so filtered-out messages
// cost only a single integer comparison.
package logger
