package history

import (
	"sync"
	"time"

	"cryptodash/internal/model"
)

// Capacity is the per-asset retention limit.
const Capacity = 50

// Store keeps a bounded per-asset sequence of price samples for charting.
// On overflow the oldest sample is evicted first. Timestamps within one
// asset's series are strictly non-decreasing; a sample arriving with an
// older timestamp (a late overlapping fetch) is dropped.
type Store struct {
	mu     sync.Mutex
	series map[string][]model.HistorySample
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{series: make(map[string][]model.HistorySample)}
}

// Record appends one observation. Returns false if the sample was dropped
// for arriving out of order.
func (s *Store) Record(slug string, price float64, ts time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.series[slug]
	if n := len(seq); n > 0 && ts.Before(seq[n-1].Timestamp) {
		return false
	}
	seq = append(seq, model.HistorySample{Slug: slug, Timestamp: ts, Price: price})
	if len(seq) > Capacity {
		seq = seq[len(seq)-Capacity:]
	}
	s.series[slug] = seq
	return true
}

// Series returns a copy of the retained samples for one asset, oldest first.
// Safe to call before any data exists.
func (s *Store) Series(slug string) []model.HistorySample {
	s.mu.Lock()
	defer s.mu.Unlock()

	seq := s.series[slug]
	out := make([]model.HistorySample, len(seq))
	copy(out, seq)
	return out
}

// Prices returns just the price column for one asset, oldest first.
func (s *Store) Prices(slug string) []float64 {
	samples := s.Series(slug)
	out := make([]float64, len(samples))
	for i, sm := range samples {
		out[i] = sm.Price
	}
	return out
}
