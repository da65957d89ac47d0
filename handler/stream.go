package handler

import (
	"io"
	"sync"

	colorable "github.com/mattn/go-colorable"

	"github.com/lovelog/lovelog/core"
	"github.com/lovelog/lovelog/formatter"
)

// StreamHandler writes formatted entries synchronously to a single
// writer. Each line is produced and written under one mutex, so
// concurrent callers may interleave whole lines in any order but never
// tear the bytes of an individual line.
type StreamHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	mu              sync.Mutex
	stats           *Stats
}

// StreamConfig holds configuration for the stream handler
type StreamConfig struct {
	// Writer to write to (default: ANSI-capable stderr)
	Writer io.Writer
	// Formatter to use (default: PrettyFormatter with zero config)
	Formatter formatter.Formatter
}

// NewStreamHandler creates a new stream handler
func NewStreamHandler(cfg StreamConfig) *StreamHandler {
	if cfg.Writer == nil {
		cfg.Writer = colorable.NewColorableStderr()
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewPrettyFormatter(formatter.PrettyConfig{})
	}

	h := &StreamHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		stats:     NewStats(),
	}

	// Cache WriterFormatter for the single-allocation path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

// Handle formats and writes an entry. Write errors are counted and
// returned to the caller, never retried or buffered.
func (h *StreamHandler) Handle(entry *core.Entry) error {
	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(entry, h.writer)
		h.mu.Unlock()
		if err != nil {
			h.stats.IncrementWriteErrors()
			return err
		}
		h.stats.IncrementProcessed()
		return nil
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	_, writeErr := h.writer.Write(data)
	h.mu.Unlock()

	if writeErr != nil {
		h.stats.IncrementWriteErrors()
		return writeErr
	}
	h.stats.IncrementProcessed()
	return nil
}

// CanRecycleEntry returns true because Handle never retains the entry
// past its own return.
func (h *StreamHandler) CanRecycleEntry() bool {
	return true
}

// Stats returns a snapshot of the current statistics
func (h *StreamHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler
func (h *StreamHandler) Close() error {
	return nil
}
