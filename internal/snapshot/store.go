package snapshot

import (
	"context"
	"sync"

	"cryptodash/internal/model"
)

// Store holds the process-wide current-prices snapshot consumed by the alert
// evaluator, the profit calculator and the ticker.
type Store interface {
	Update(ctx context.Context, quotes []model.Quote) error
	Current(ctx context.Context) (model.QuoteSet, error)
	Get(ctx context.Context, slug string) (model.Quote, bool, error)
	Close() error
}

// MemoryStore is the default in-process snapshot.
type MemoryStore struct {
	mu     sync.RWMutex
	quotes model.QuoteSet
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{quotes: make(model.QuoteSet)}
}

func (s *MemoryStore) Update(_ context.Context, quotes []model.Quote) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, q := range quotes {
		s.quotes[q.Slug] = q
	}
	return nil
}

func (s *MemoryStore) Current(_ context.Context) (model.QuoteSet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(model.QuoteSet, len(s.quotes))
	for k, v := range s.quotes {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStore) Get(_ context.Context, slug string) (model.Quote, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	q, ok := s.quotes[slug]
	return q, ok, nil
}

func (s *MemoryStore) Close() error { return nil }
