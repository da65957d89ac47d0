package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/lovelog/lovelog/core"
)

// SlogHandler is an adapter that implements slog.Handler on top of a
// lovelog Handler, so log/slog call sites render through the same
// formatter. The record model here has no structured fields, so slog
// attributes are flattened into trailing "key=value" message text and
// slog groups prefix the attribute keys.
type SlogHandler struct {
	handler Handler
	level   core.Level
	target  string
	attrs   string
	group   string
}

// NewSlogHandler creates a new slog.Handler adapter wrapping the given
// Handler. Records are emitted under the given target.
func NewSlogHandler(h Handler, level core.Level, target string) *SlogHandler {
	return &SlogHandler{
		handler: h,
		level:   level,
		target:  target,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return slogLevelToCore(level) >= s.level
}

// Handle converts a slog.Record to a core.Entry and passes it to the
// wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	entry := core.GetEntry()
	if !record.Time.IsZero() {
		entry.Time = record.Time
	} else {
		entry.Time = time.Now()
	}
	entry.Level = slogLevelToCore(record.Level)
	entry.Target = s.target

	msg := record.Message + s.attrs
	record.Attrs(func(a slog.Attr) bool {
		msg += renderAttr(s.group, a)
		return true
	})
	entry.Message = msg

	err := s.handler.Handle(entry)
	core.PutEntry(entry)
	return err
}

// WithAttrs returns a new SlogHandler with additional attributes.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rendered := s.attrs
	for _, a := range attrs {
		rendered += renderAttr(s.group, a)
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		target:  s.target,
		attrs:   rendered,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	return &SlogHandler{
		handler: s.handler,
		level:   s.level,
		target:  s.target,
		attrs:   s.attrs,
		group:   newGroup,
	}
}

// slogLevelToCore converts a slog.Level to a core.Level. Levels below
// slog's Debug map to Trace, which slog itself has no name for.
func slogLevelToCore(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarnLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	case level >= slog.LevelDebug:
		return core.DebugLevel
	default:
		return core.TraceLevel
	}
}

// renderAttr renders a slog.Attr as " key=value" text, prepending the
// group prefix if present.
func renderAttr(group string, a slog.Attr) string {
	a.Value = a.Value.Resolve()
	if a.Key == "" {
		return ""
	}
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}
	return " " + key + "=" + a.Value.String()
}
