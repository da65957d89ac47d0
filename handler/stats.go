package handler

import "sync/atomic"

// Stats tracks handler statistics
type Stats struct {
	// ProcessedTotal counts entries written successfully
	ProcessedTotal uint64
	// WriteErrors counts entries whose write failed
	WriteErrors uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// IncrementWriteErrors atomically increments the write-error counter
func (s *Stats) IncrementWriteErrors() {
	atomic.AddUint64(&s.WriteErrors, 1)
}

// GetProcessed returns the processed count
func (s *Stats) GetProcessed() uint64 {
	return atomic.LoadUint64(&s.ProcessedTotal)
}

// GetWriteErrors returns the write-error count
func (s *Stats) GetWriteErrors() uint64 {
	return atomic.LoadUint64(&s.WriteErrors)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.ProcessedTotal, 0)
	atomic.StoreUint64(&s.WriteErrors, 0)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	Processed   uint64
	WriteErrors uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Processed:   s.GetProcessed(),
		WriteErrors: s.GetWriteErrors(),
	}
}
