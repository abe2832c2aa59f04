package panels

import (
	"context"
	"log"
	"sync"

	"cryptodash/internal/collector"
	"cryptodash/internal/model"
)

// SentimentGauge holds the latest fear & greed reading, replaced wholesale on
// each refresh. A failed lookup degrades to a random synthetic reading that is
// marked estimated.
type SentimentGauge struct {
	mu      sync.Mutex
	client  *collector.FearGreedClient
	reading model.FearGreedReading
}

// NewSentimentGauge creates a gauge starting from a synthetic reading so the
// panel is never empty.
func NewSentimentGauge(client *collector.FearGreedClient) *SentimentGauge {
	return &SentimentGauge{
		client:  client,
		reading: collector.SyntheticFearGreed(),
	}
}

// Refresh replaces the reading from the index API, or from the synthetic
// fallback when the API fails.
func (g *SentimentGauge) Refresh(ctx context.Context) model.FearGreedReading {
	reading, err := g.client.Fetch(ctx)
	if err != nil {
		log.Printf("[WARN] fear-greed fetch failed, using synthetic reading: %v", err)
		reading = collector.SyntheticFearGreed()
	}

	g.mu.Lock()
	g.reading = reading
	g.mu.Unlock()
	return reading
}

// Reading returns the current gauge value.
func (g *SentimentGauge) Reading() model.FearGreedReading {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.reading
}
