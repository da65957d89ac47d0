package formatter

import (
	"bytes"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/lovelog/lovelog/core"
)

// TimestampMode selects the line prefix rendered by PrettyFormatter.
type TimestampMode int

const (
	// TimestampNone omits the timestamp prefix.
	TimestampNone TimestampMode = iota
	// TimestampAbsolute prefixes each line with the wall-clock time at
	// millisecond precision.
	TimestampAbsolute
	// TimestampRelative prefixes each line with the elapsed time since the
	// previous line when both fall into the same wall-clock second, and
	// with a full (bold) date/time stamp otherwise.
	TimestampRelative
)

// PrettyConfig holds the rendering options for PrettyFormatter.
type PrettyConfig struct {
	// ShortLevels renders 3-character level labels instead of 5-character ones.
	ShortLevels bool
	// IncludeFile appends ":file" to the target when the entry carries caller info.
	IncludeFile bool
	// IncludeLine appends ":line" to the target (after the file when both are enabled).
	IncludeLine bool
	// Padding aligns the target+location column to the widest value seen so far.
	Padding bool
	// Timestamps selects the timestamp prefix.
	Timestamps TimestampMode
	// ForceColors emits ANSI codes even when the environment disabled them.
	ForceColors bool
	// DisableColors strips all ANSI styling.
	DisableColors bool
	// Widths is the shared width tracker consulted when Padding is on.
	// Leave nil to give the formatter its own tracker.
	Widths *WidthTracker
}

const (
	absoluteStampLayout = "2006-01-02 15:04:05.000"
	resetStampLayout    = "2006-01-02 15:04:05"
)

// Level label columns are fixed-width so the target column starts at the
// same offset on every line: 5 characters long-form, 3 short-form.
var (
	longLabels  = [5]string{"TRACE", "DEBUG", "INFO ", "WARN ", "ERROR"}
	shortLabels = [5]string{"TRC", "DBG", "INF", "WRN", "ERR"}

	levelColors = [5]color.Attribute{
		core.TraceLevel: color.FgMagenta,
		core.DebugLevel: color.FgBlue,
		core.InfoLevel:  color.FgGreen,
		core.WarnLevel:  color.FgYellow,
		core.ErrorLevel: color.FgRed,
	}
)

// PrettyFormatter renders entries as colorized, optionally aligned,
// human-readable lines:
//
//	[timestamp ]LEVEL target[:file][:line][padding] > message
//
// It is safe for concurrent use; the width tracker is updated atomically
// and the relative-timestamp state sits behind a mutex.
type PrettyFormatter struct {
	cfg    PrettyConfig
	widths *WidthTracker

	labels     [5]string
	targetBold *color.Color
	stampBold  *color.Color

	mu   sync.Mutex // guards last
	last time.Time

	now func() time.Time // overridable in tests
}

// NewPrettyFormatter creates a pretty formatter for the given config.
func NewPrettyFormatter(cfg PrettyConfig) *PrettyFormatter {
	f := &PrettyFormatter{
		cfg:    cfg,
		widths: cfg.Widths,
		now:    time.Now,
	}
	if f.widths == nil {
		f.widths = NewWidthTracker()
	}

	labels := longLabels
	if cfg.ShortLevels {
		labels = shortLabels
	}
	// The label table is total over the closed level set, so rendering a
	// level never hits an unmapped case.
	for i := range f.labels {
		f.labels[i] = f.styled(color.New(levelColors[i])).Sprint(labels[i])
	}
	f.targetBold = f.styled(color.New(color.Bold))
	f.stampBold = f.styled(color.New(color.Bold))

	return f
}

// styled applies the formatter's color overrides to c.
func (f *PrettyFormatter) styled(c *color.Color) *color.Color {
	if f.cfg.DisableColors {
		c.DisableColor()
	} else if f.cfg.ForceColors {
		c.EnableColor()
	}
	return c
}

// Widths returns the tracker this formatter consults for padding.
func (f *PrettyFormatter) Widths() *WidthTracker {
	return f.widths
}

// Format formats an entry as a single line of text
func (f *PrettyFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *PrettyFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// formatToBuffer writes the formatted entry into the given buffer
func (f *PrettyFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	switch f.cfg.Timestamps {
	case TimestampAbsolute:
		buf.Write(f.now().AppendFormat(buf.AvailableBuffer(), absoluteStampLayout))
		buf.WriteByte(' ')
	case TimestampRelative:
		f.writeRelativeStamp(buf)
		buf.WriteByte(' ')
	}

	if idx := int(entry.Level); idx >= 0 && idx < len(f.labels) {
		buf.WriteString(f.labels[idx])
	} else {
		buf.WriteString(entry.Level.String())
	}
	buf.WriteByte(' ')

	location := f.location(entry)
	combined := len(entry.Target) + len(location)
	width := combined
	if f.cfg.Padding {
		width = f.widths.Observe(combined)
	}

	buf.WriteString(f.targetBold.Sprint(entry.Target))
	buf.WriteString(location)
	// Only the location side absorbs padding, keeping the target text
	// left-aligned while the column total still lines up.
	for ; combined < width; combined++ {
		buf.WriteByte(' ')
	}

	buf.WriteString(" > ")
	buf.WriteString(entry.Message)
	buf.WriteByte('\n')
}

// location composes the optional ":file", ":line", or ":file:line"
// suffix. All four presence combinations are valid; absent parts are
// skipped without leaving stray colons behind.
func (f *PrettyFormatter) location(entry *core.Entry) string {
	if !entry.Caller.Defined || (!f.cfg.IncludeFile && !f.cfg.IncludeLine) {
		return ""
	}

	var b []byte
	if f.cfg.IncludeFile && entry.Caller.ShortFile != "" {
		b = append(b, ':')
		b = append(b, entry.Caller.ShortFile...)
	}
	if f.cfg.IncludeLine && entry.Caller.Line > 0 {
		b = append(b, ':')
		b = strconv.AppendInt(b, int64(entry.Caller.Line), 10)
	}
	return string(b)
}

// writeRelativeStamp renders the elapsed time since the previous line
// when both lines fall into the same wall-clock second, and a bold full
// stamp otherwise. Reading the previous value and storing the new one
// happens in a single critical section so concurrent callers never
// interleave the read and the overwrite.
func (f *PrettyFormatter) writeRelativeStamp(buf *bytes.Buffer) {
	now := f.now()

	f.mu.Lock()
	last := f.last
	f.last = now
	f.mu.Unlock()

	if !last.IsZero() && now.Unix() == last.Unix() {
		elapsed := now.Sub(last)
		if elapsed < 0 {
			elapsed = 0
		}
		writeDelta(buf, elapsed)
		return
	}

	buf.WriteString(f.stampBold.Sprint(now.Format(resetStampLayout)))
}

// writeDelta renders elapsed as a fixed-width fractional second,
// "0." followed by nine zero-padded nanosecond digits.
func writeDelta(buf *bytes.Buffer, elapsed time.Duration) {
	var digits [9]byte
	n := elapsed.Nanoseconds()
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	buf.WriteString("0.")
	buf.Write(digits[:])
}
