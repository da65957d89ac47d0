package formatter

import "sync/atomic"

// WidthTracker records the widest target+location column seen so far.
// The tracked value is monotonically non-decreasing over the tracker's
// lifetime and is safe to update from concurrent goroutines.
type WidthTracker struct {
	max atomic.Int64
}

// NewWidthTracker creates an empty tracker.
func NewWidthTracker() *WidthTracker {
	return &WidthTracker{}
}

// Observe reports a field of length n and returns the column width to
// render it with: the widest length seen so far, including n itself.
// The update is a CAS loop so concurrent observers never lose a wider
// value to an interleaved store.
func (w *WidthTracker) Observe(n int) int {
	for {
		max := w.max.Load()
		if int64(n) <= max {
			return int(max)
		}
		if w.max.CompareAndSwap(max, int64(n)) {
			return n
		}
	}
}

// Max returns the widest length observed so far.
func (w *WidthTracker) Max() int {
	return int(w.max.Load())
}
