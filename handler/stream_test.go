package handler

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/lovelog/lovelog/core"
	"github.com/lovelog/lovelog/formatter"
)

func plainPretty(cfg formatter.PrettyConfig) *formatter.PrettyFormatter {
	cfg.DisableColors = true
	return formatter.NewPrettyFormatter(cfg)
}

func TestStreamHandler_Write(t *testing.T) {
	var buf bytes.Buffer
	h := NewStreamHandler(StreamConfig{
		Writer:    &buf,
		Formatter: plainPretty(formatter.PrettyConfig{}),
	})

	entry := &core.Entry{
		Level:   core.WarnLevel,
		Target:  "app::net",
		Message: "conn dropped",
	}

	if err := h.Handle(entry); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	want := "WARN  app::net > conn dropped\n"
	if buf.String() != want {
		t.Errorf("Handle() wrote %q, want %q", buf.String(), want)
	}

	stats := h.Stats()
	if stats.Processed != 1 {
		t.Errorf("Processed = %d, want 1", stats.Processed)
	}
	if stats.WriteErrors != 0 {
		t.Errorf("WriteErrors = %d, want 0", stats.WriteErrors)
	}
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestStreamHandler_WriteErrorPropagates(t *testing.T) {
	h := NewStreamHandler(StreamConfig{
		Writer:    failWriter{},
		Formatter: plainPretty(formatter.PrettyConfig{}),
	})

	entry := &core.Entry{Level: core.InfoLevel, Target: "app", Message: "msg"}
	err := h.Handle(entry)
	if err == nil {
		t.Fatal("Handle() masked the write error")
	}
	if !strings.Contains(err.Error(), "disk on fire") {
		t.Errorf("Handle() error = %v, want the writer's error", err)
	}

	if got := h.Stats().WriteErrors; got != 1 {
		t.Errorf("WriteErrors = %d, want 1", got)
	}
	if got := h.Stats().Processed; got != 0 {
		t.Errorf("Processed = %d, want 0", got)
	}
}

// syncBuffer serializes writes so the test can read concurrently
// written output safely.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStreamHandler_ConcurrentLinesNotTorn(t *testing.T) {
	var buf syncBuffer
	h := NewStreamHandler(StreamConfig{
		Writer:    &buf,
		Formatter: plainPretty(formatter.PrettyConfig{Padding: true}),
	})

	const goroutines = 8
	const lines = 200

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < lines; i++ {
				entry := &core.Entry{
					Level:   core.InfoLevel,
					Target:  fmt.Sprintf("worker%d", g),
					Message: fmt.Sprintf("message %d", i),
				}
				if err := h.Handle(entry); err != nil {
					t.Errorf("Handle() error = %v", err)
					return
				}
			}
		}(g)
	}
	wg.Wait()

	// Ordering across goroutines is unspecified, but every individual
	// line must be intact.
	out := strings.TrimSuffix(buf.String(), "\n")
	got := strings.Split(out, "\n")
	if len(got) != goroutines*lines {
		t.Fatalf("got %d lines, want %d", len(got), goroutines*lines)
	}
	for _, line := range got {
		if !strings.HasPrefix(line, "INFO  worker") || !strings.Contains(line, " > message ") {
			t.Fatalf("torn or malformed line: %q", line)
		}
	}
}

func TestStreamHandler_Defaults(t *testing.T) {
	h := NewStreamHandler(StreamConfig{})
	if h.writer == nil {
		t.Error("default writer not set")
	}
	if h.formatter == nil {
		t.Error("default formatter not set")
	}
	if h.writerFormatter == nil {
		t.Error("PrettyFormatter should satisfy WriterFormatter")
	}
	if !h.CanRecycleEntry() {
		t.Error("stream handler must allow entry recycling")
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
