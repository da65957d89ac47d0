// Package handler provides the Handler interface and its built-in
// implementations for writing log entries to an output stream.
//
// StreamHandler is the workhorse: it formats and writes each entry
// synchronously under a single mutex, which guarantees that concurrent
// callers never interleave the bytes of two lines even though no
// ordering between their lines is promised. The default writer is an
// ANSI-capable stderr (via mattn/go-colorable), so colorized output
// survives on Windows consoles.
//
// Write failures are returned to the caller and counted in the
// handler's Stats; they are never retried or buffered.
//
// SlogHandler adapts the Handler interface to log/slog.Handler,
// allowing this library to serve as a rendering backend for the
// standard library's structured logger.
package handler
