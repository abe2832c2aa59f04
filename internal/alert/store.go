package alert

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"cryptodash/internal/model"
)

// Validation failures block the triggering action and never reach persisted state.
var (
	ErrInvalidThreshold = errors.New("alert threshold must be a positive price")
	ErrUnknownAsset     = errors.New("unknown asset")
	ErrNotFound         = errors.New("alert not found")
)

// Trigger describes one alert that fired during an Evaluate pass.
type Trigger struct {
	Alert model.Alert
	Price float64
}

// Store manages the persisted alert list with concurrency safety.
type Store struct {
	mu       sync.Mutex
	alerts   []model.Alert
	filePath string
}

// NewStore creates a Store, loading persisted alerts from disk.
func NewStore(filePath string) (*Store, error) {
	alerts, err := LoadAlerts(filePath)
	if err != nil {
		return nil, fmt.Errorf("load alerts: %w", err)
	}
	return &Store{alerts: alerts, filePath: filePath}, nil
}

// Add validates and appends a new alert, persisting the full list.
func (s *Store) Add(slug string, threshold float64) (model.Alert, error) {
	if threshold <= 0 {
		return model.Alert{}, ErrInvalidThreshold
	}
	if _, ok := model.AssetBySlug(slug); !ok {
		return model.Alert{}, fmt.Errorf("%w: %s", ErrUnknownAsset, slug)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := model.Alert{
		ID:        uuid.NewString(),
		Slug:      slug,
		Threshold: threshold,
		CreatedAt: time.Now(),
	}
	s.alerts = append(s.alerts, a)
	s.save()
	return a, nil
}

// Remove deletes an alert by id, persisting the full list.
func (s *Store) Remove(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, a := range s.alerts {
		if a.ID == id {
			s.alerts = append(s.alerts[:i], s.alerts[i+1:]...)
			s.save()
			return nil
		}
	}
	return ErrNotFound
}

// List returns a copy of the current alert list.
func (s *Store) List() []model.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Alert, len(s.alerts))
	copy(out, s.alerts)
	return out
}

// Evaluate runs once per fetch cycle: every untriggered alert whose asset has
// a quote at or above its threshold flips triggered (one-way) and is returned
// so the caller can notify exactly once. Triggered alerts stay in the list
// until removed manually.
func (s *Store) Evaluate(quotes model.QuoteSet) []Trigger {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fired []Trigger
	for i := range s.alerts {
		a := &s.alerts[i]
		if a.Triggered {
			continue
		}
		q, ok := quotes[a.Slug]
		if !ok {
			continue
		}
		if q.USDPrice >= a.Threshold {
			a.Triggered = true
			fired = append(fired, Trigger{Alert: *a, Price: q.USDPrice})
		}
	}
	if len(fired) > 0 {
		s.save()
	}
	return fired
}

func (s *Store) save() {
	if err := SaveAlerts(s.filePath, s.alerts); err != nil {
		log.Printf("[ERROR] failed to save alerts: %v", err)
	}
}
