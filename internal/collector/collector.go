package collector

import (
	"context"
	"fmt"
	"log"
	"time"

	"cryptodash/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Quotes []model.Quote
	Err    error
	Calls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchQuotes(_ context.Context, slugs []string) ([]model.Quote, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Quotes != nil {
		return m.Quotes, nil
	}
	return generateMockQuotes(slugs), nil
}

func generateMockQuotes(slugs []string) []model.Quote {
	now := time.Now()
	quotes := make([]model.Quote, len(slugs))
	for i, slug := range slugs {
		base := 100.0 * float64(i+1)
		quotes[i] = model.Quote{
			Slug:         slug,
			USDPrice:     base,
			PctChange24h: float64(i) - 2,
			Volume24h:    base * 1e6,
			MarketCap:    base * 1e8,
			ObservedAt:   now,
		}
	}
	return quotes
}

// Collector fetches quotes from a primary source, falling back to a secondary
// source on any failure. Only quotes for cataloged assets are kept.
type Collector struct {
	Primary   Fetcher
	Secondary Fetcher
	Slugs     []string
}

// NewCollector creates a new Collector. Secondary may be nil.
func NewCollector(primary, secondary Fetcher, slugs []string) *Collector {
	return &Collector{Primary: primary, Secondary: secondary, Slugs: slugs}
}

// Collect fetches the latest quotes, consulting the secondary source when the
// primary fails. If both fail the returned error wraps both causes and the
// caller keeps whatever it rendered last.
func (c *Collector) Collect(ctx context.Context) ([]model.Quote, error) {
	quotes, primaryErr := c.Primary.FetchQuotes(ctx, c.Slugs)
	if primaryErr == nil {
		return c.filter(quotes), nil
	}
	if c.Secondary == nil {
		return nil, fmt.Errorf("%s fetch failed: %w", c.Primary.Name(), primaryErr)
	}
	log.Printf("[WARN] %s fetch failed, trying %s: %v", c.Primary.Name(), c.Secondary.Name(), primaryErr)

	quotes, secondaryErr := c.Secondary.FetchQuotes(ctx, c.Slugs)
	if secondaryErr != nil {
		return nil, fmt.Errorf("%s failed: %w; %s fallback failed: %w",
			c.Primary.Name(), primaryErr, c.Secondary.Name(), secondaryErr)
	}
	return c.filter(quotes), nil
}

// filter drops quotes for assets outside the tracked catalog and preserves
// catalog order so downstream rendering is stable across sources.
func (c *Collector) filter(quotes []model.Quote) []model.Quote {
	bySlug := make(map[string]model.Quote, len(quotes))
	for _, q := range quotes {
		bySlug[q.Slug] = q
	}
	out := make([]model.Quote, 0, len(c.Slugs))
	for _, slug := range c.Slugs {
		if q, ok := bySlug[slug]; ok {
			out = append(out, q)
		}
	}
	return out
}
