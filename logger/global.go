package logger

import (
	"errors"
	"sync"
	"sync/atomic"
)

// ErrGlobalAlreadySet is returned by SetGlobal when a global logger has
// already been installed in this process.
var ErrGlobalAlreadySet = errors.New("logger: global logger already installed")

var (
	globalMu        sync.Mutex
	globalInstalled bool
	global          atomic.Pointer[Logger]
)

func init() {
	// Before installation the package-level functions delegate to a
	// handlerless Logger, which drops everything.
	global.Store(NewBuilder().Build())
}

// Global returns the process-wide logger. Until SetGlobal succeeds it
// is a no-op logger.
func Global() *Logger {
	return global.Load()
}

// SetGlobal installs l as the process-wide logger. It succeeds exactly
// once per process; every later call returns ErrGlobalAlreadySet and
// leaves the installed logger untouched.
func SetGlobal(l *Logger) error {
	globalMu.Lock()
	defer globalMu.Unlock()

	if globalInstalled {
		return ErrGlobalAlreadySet
	}
	globalInstalled = true
	global.Store(l)
	return nil
}

// MustSetGlobal is like SetGlobal but panics on a second installation
// attempt.
func MustSetGlobal(l *Logger) {
	if err := SetGlobal(l); err != nil {
		panic(err)
	}
}

// Package-level convenience functions using the global logger

// Trace logs a trace message using the global logger
func Trace(msg string) {
	Global().Trace(msg)
}

// Debug logs a debug message using the global logger
func Debug(msg string) {
	Global().Debug(msg)
}

// Info logs an info message using the global logger
func Info(msg string) {
	Global().Info(msg)
}

// Warn logs a warning message using the global logger
func Warn(msg string) {
	Global().Warn(msg)
}

// Error logs an error message using the global logger
func Error(msg string) {
	Global().Error(msg)
}

// Tracef logs a formatted trace message using the global logger
func Tracef(format string, args ...interface{}) {
	Global().Tracef(format, args...)
}

// Debugf logs a formatted debug message using the global logger
func Debugf(format string, args ...interface{}) {
	Global().Debugf(format, args...)
}

// Infof logs a formatted info message using the global logger
func Infof(format string, args ...interface{}) {
	Global().Infof(format, args...)
}

// Warnf logs a formatted warning message using the global logger
func Warnf(format string, args ...interface{}) {
	Global().Warnf(format, args...)
}

// Errorf logs a formatted error message using the global logger
func Errorf(format string, args ...interface{}) {
	Global().Errorf(format, args...)
}

// Named creates a child of the global logger with the given target
func Named(name string) *Logger {
	return Global().Named(name)
}
