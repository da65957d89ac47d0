package logger

import (
	"fmt"

	"github.com/lovelog/lovelog/core"
	"github.com/lovelog/lovelog/handler"
)

// Logger is the main logging interface (immutable)
type Logger struct {
	handler       handler.Handler
	level         core.Level
	target        string
	includeCaller bool
	callerSkip    int
	recycleEntry  bool
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	handler       handler.Handler
	level         core.Level
	target        string
	includeCaller bool
	callerSkip    int
	recycleEntry  bool
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel, // Default level
		callerSkip: 3,              // Default skip for getCaller
	}
}

// WithHandler sets the handler
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	// Pre-compute recycleEntry to avoid interface assertion on the log path
	if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
		b.recycleEntry = rc.CanRecycleEntry()
	} else {
		b.recycleEntry = false
	}
	return b
}

// WithLevel sets the minimum level
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithTarget sets the target (module name) emitted with every entry
func (b *Builder) WithTarget(target string) *Builder {
	b.target = target
	return b
}

// WithCaller enables caller file/line capture
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:       b.handler,
		level:         b.level,
		target:        b.target,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		recycleEntry:  b.recycleEntry,
	}
}

// Named creates a child Logger whose target extends this logger's
// target with "::" (immutable operation):
//
//	app := logger.NewBuilder().WithTarget("app").WithHandler(h).Build()
//	net := app.Named("net") // target "app::net"
func (l *Logger) Named(name string) *Logger {
	target := name
	if l.target != "" {
		target = l.target + "::" + name
	}

	return &Logger{
		handler:       l.handler,
		level:         l.level,
		target:        target,
		includeCaller: l.includeCaller,
		callerSkip:    l.callerSkip,
		recycleEntry:  l.recycleEntry,
	}
}

// Target returns the logger's target string.
func (l *Logger) Target() string {
	return l.target
}

// Log logs a message at the specified level
func (l *Logger) Log(level core.Level, msg string) {
	// Level check optimization - exit early BEFORE any allocations
	if level < l.level {
		return
	}

	l.log(level, msg)
}

// log is the internal logging method
func (l *Logger) log(level core.Level, msg string) {
	// Handler check - exit if no handler (avoid any work)
	if l.handler == nil {
		return
	}

	// Get entry from pool AFTER level check
	entry := core.GetEntry()
	entry.Level = level
	entry.Target = l.target
	entry.Message = msg

	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip)
	}

	err := l.handler.Handle(entry)
	if err != nil {
		return
	}

	// Return entry to pool if handler supports it
	if l.recycleEntry {
		core.PutEntry(entry)
	}
}

// Trace logs a trace message
func (l *Logger) Trace(msg string) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(core.TraceLevel, msg)
}

// Debug logs a debug message
func (l *Logger) Debug(msg string) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, msg)
}

// Info logs an info message
func (l *Logger) Info(msg string) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, msg)
}

// Error logs an error message
func (l *Logger) Error(msg string) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, msg)
}

// Tracef logs a trace message with formatting
func (l *Logger) Tracef(format string, args ...interface{}) {
	if core.TraceLevel < l.level {
		return
	}
	l.log(core.TraceLevel, fmt.Sprintf(format, args...))
}

// Debugf logs a debug message with formatting
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...))
}

// Infof logs an info message with formatting
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...))
}

// Warnf logs a warning message with formatting
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...))
}

// Errorf logs an error message with formatting
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...))
}

// Enabled reports whether a message at the given level would be emitted.
func (l *Logger) Enabled(level core.Level) bool {
	return level >= l.level && l.handler != nil
}

// Close closes the logger's handler
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
