// Package benchmark holds competitive benchmarks pitting the pretty
// formatter against the console outputs of other popular frameworks.
// It is a separate module so the comparison frameworks never appear in
// the library's own dependency graph.
package benchmark

import (
	"github.com/lovelog/lovelog/core"
)

// NoopHandler accepts and discards entries. Benchmarking against it
// isolates the facade's own overhead (level gate, pooling, caller
// capture) from formatting and writing.
type NoopHandler struct{}

// Handle discards the entry
func (NoopHandler) Handle(entry *core.Entry) error {
	return nil
}

// Close is a no-op
func (NoopHandler) Close() error {
	return nil
}

// CanRecycleEntry returns true; the entry is never retained.
func (NoopHandler) CanRecycleEntry() bool {
	return true
}
