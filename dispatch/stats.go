package dispatch

import "sync/atomic"

// Stats tracks loop statistics
type Stats struct {
	// InlineTotal counts actions executed in place on the owner goroutine
	InlineTotal uint64
	// MarshaledTotal counts actions marshaled from another goroutine
	MarshaledTotal uint64
	// RecoveredTotal counts actions that panicked and were recovered
	RecoveredTotal uint64
	// ProcessedTotal counts actions that completed without panicking
	ProcessedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementInline atomically increments the inline counter
func (s *Stats) IncrementInline() {
	atomic.AddUint64(&s.InlineTotal, 1)
}

// IncrementMarshaled atomically increments the marshaled counter
func (s *Stats) IncrementMarshaled() {
	atomic.AddUint64(&s.MarshaledTotal, 1)
}

// IncrementRecovered atomically increments the recovered counter
func (s *Stats) IncrementRecovered() {
	atomic.AddUint64(&s.RecoveredTotal, 1)
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	atomic.AddUint64(&s.ProcessedTotal, 1)
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	InlineTotal    uint64
	MarshaledTotal uint64
	RecoveredTotal uint64
	ProcessedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		InlineTotal:    atomic.LoadUint64(&s.InlineTotal),
		MarshaledTotal: atomic.LoadUint64(&s.MarshaledTotal),
		RecoveredTotal: atomic.LoadUint64(&s.RecoveredTotal),
		ProcessedTotal: atomic.LoadUint64(&s.ProcessedTotal),
	}
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.InlineTotal, 0)
	atomic.StoreUint64(&s.MarshaledTotal, 0)
	atomic.StoreUint64(&s.RecoveredTotal, 0)
	atomic.StoreUint64(&s.ProcessedTotal, 0)
}
