package model

import "time"

// Quote is one asset's latest USD price and 24h statistics.
// Quotes are produced fresh on every successful fetch and never mutated.
type Quote struct {
	Slug         string    `json:"slug"`
	USDPrice     float64   `json:"usd_price"`
	PctChange24h float64   `json:"pct_change_24h"`
	Volume24h    float64   `json:"volume_24h"`
	MarketCap    float64   `json:"market_cap"`
	ObservedAt   time.Time `json:"observed_at"`
}

// QuoteSet maps asset slug to its latest quote.
type QuoteSet map[string]Quote

// HistorySample is one retained (timestamp, price) observation for charting.
type HistorySample struct {
	Slug      string    `json:"slug"`
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
}

// FearGreedReading is a single sentiment indicator in [0,100].
// Estimated marks a synthetic fallback value that did not come from the index API.
type FearGreedReading struct {
	Value          int       `json:"value"`
	Classification string    `json:"classification"`
	ColorClass     string    `json:"color_class"`
	Estimated      bool      `json:"estimated"`
	FetchedAt      time.Time `json:"fetched_at"`
}
