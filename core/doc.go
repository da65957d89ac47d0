// Package core defines the shared types used across the lovelog library.
//
// It provides the Level type for severity filtering and the Entry type
// that represents a single log record: the time it was produced, its
// severity, the target (the module/component name of the call site),
// the message text, and optional caller file/line information.
//
// The level set is closed — Trace, Debug, Info, Warn, Error — and
// totally ordered by severity. There is no Fatal or Panic: emitting a
// record never terminates the program.
//
// Entry objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get an Entry with GetEntry and must return
// it with PutEntry once the handler has consumed it.
package core
